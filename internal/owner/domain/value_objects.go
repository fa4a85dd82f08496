package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var allowedServiceTypes = []string{"トリミング", "動物病院", "ペットホテル", "しつけ教室", "散歩代行", "ペットカフェ", "ペットショップ"}

const maxBusinessNameRunes = 100

type BusinessName string

func NewBusinessName(value string) (BusinessName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("business name is required")
	}
	if utf8.RuneCountInString(trimmed) > maxBusinessNameRunes {
		return "", fmt.Errorf("business name must be %d characters or fewer", maxBusinessNameRunes)
	}
	return BusinessName(trimmed), nil
}

func (n BusinessName) String() string {
	return string(n)
}

type ServiceType string

func NewServiceType(value string) (ServiceType, error) {
	code := canonicalServiceType(value)
	if code == "" {
		return "", fmt.Errorf("service type is required")
	}
	for _, allowed := range allowedServiceTypes {
		if allowed == code {
			return ServiceType(code), nil
		}
	}
	return "", fmt.Errorf("invalid service type: %s", value)
}

func (t ServiceType) String() string {
	return string(t)
}

type Address string

func NewAddress(value string) (Address, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("address is required")
	}
	return Address(trimmed), nil
}

func (a Address) String() string {
	return string(a)
}

// Coordinates validates the WGS84 value ranges at the domain boundary so that
// downstream distance math can assume well-formed points.
type Coordinates struct {
	longitude float64
	latitude  float64
}

func NewCoordinates(longitude, latitude float64) (Coordinates, error) {
	if longitude < -180 || longitude > 180 {
		return Coordinates{}, fmt.Errorf("longitude out of range: %f", longitude)
	}
	if latitude < -90 || latitude > 90 {
		return Coordinates{}, fmt.Errorf("latitude out of range: %f", latitude)
	}
	return Coordinates{longitude: longitude, latitude: latitude}, nil
}

func (c Coordinates) Longitude() float64 {
	return c.longitude
}

func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// canonicalServiceType はユーザー入力の別名を正規のサービス種別ラベルへ寄せる。
func canonicalServiceType(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	switch lower {
	case "grooming", "trimming":
		return "トリミング"
	case "vet", "veterinary", "clinic":
		return "動物病院"
	case "hotel", "boarding":
		return "ペットホテル"
	case "training", "school":
		return "しつけ教室"
	case "walking", "walk":
		return "散歩代行"
	case "cafe":
		return "ペットカフェ"
	case "shop", "petshop", "store":
		return "ペットショップ"
	}

	return trimmed
}
