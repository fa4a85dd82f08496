package application

import (
	"context"
	"fmt"
	"time"

	ownerdomain "github.com/harunoki/petnavi-services/api/internal/owner/domain"
)

// businessService implements BusinessService.
type businessService struct {
	repo BusinessRepository
}

func NewBusinessService(repo BusinessRepository) BusinessService {
	return &businessService{repo: repo}
}

func (s *businessService) Create(ctx context.Context, ownerID string, cmd UpsertBusinessCommand) (*ownerdomain.Business, error) {
	business, err := buildBusiness(cmd)
	if err != nil {
		return nil, err
	}
	business.OwnerID = ownerID
	business.CreatedAt = time.Now().UTC()
	business.UpdatedAt = business.CreatedAt

	if err := s.repo.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

func (s *businessService) Update(ctx context.Context, id, ownerID string, cmd UpsertBusinessCommand) (*ownerdomain.Business, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	business, err := buildBusiness(cmd)
	if err != nil {
		return nil, err
	}
	business.ID = existing.ID
	business.OwnerID = existing.OwnerID
	business.Rating = existing.Rating
	business.ReviewCount = existing.ReviewCount
	business.CreatedAt = existing.CreatedAt
	business.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

func (s *businessService) Delete(ctx context.Context, id, ownerID string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// buildBusiness は生のコマンドを値オブジェクト検証を通してドメインエンティティへ変換する。
func buildBusiness(cmd UpsertBusinessCommand) (*ownerdomain.Business, error) {
	name, err := ownerdomain.NewBusinessName(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	serviceType, err := ownerdomain.NewServiceType(cmd.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	address, err := ownerdomain.NewAddress(cmd.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	coordinates, err := ownerdomain.NewCoordinates(cmd.Longitude, cmd.Latitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &ownerdomain.Business{
		Name:        name,
		ServiceType: serviceType,
		Address:     address,
		Coordinates: coordinates,
		IsOpen:      cmd.IsOpen,
	}, nil
}
