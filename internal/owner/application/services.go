package application

import (
	"context"
	"errors"

	ownerdomain "github.com/harunoki/petnavi-services/api/internal/owner/domain"
)

var (
	// ErrInvalidInput is returned when a command fails value-object validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when the referenced business does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller does not own the business.
	ErrForbidden = errors.New("forbidden")
)

// BusinessRepository abstracts owner-side writes.
// Delete はリスティング本体と配下のレビューをまとめて削除する。
type BusinessRepository interface {
	FindByID(ctx context.Context, id string) (*ownerdomain.Business, error)
	Create(ctx context.Context, business *ownerdomain.Business) error
	Update(ctx context.Context, business *ownerdomain.Business) error
	Delete(ctx context.Context, id string) error
}

// UpsertBusinessCommand carries the raw listing fields from the transport layer.
type UpsertBusinessCommand struct {
	Name        string
	ServiceType string
	Address     string
	Longitude   float64
	Latitude    float64
	IsOpen      bool
}

// BusinessService describes the owner use-cases.
// 所有権チェックはここで行い、リポジトリはストレージ操作に徹する。
type BusinessService interface {
	Create(ctx context.Context, ownerID string, cmd UpsertBusinessCommand) (*ownerdomain.Business, error)
	Update(ctx context.Context, id, ownerID string, cmd UpsertBusinessCommand) (*ownerdomain.Business, error)
	Delete(ctx context.Context, id, ownerID string) error
}
