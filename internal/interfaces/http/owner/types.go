package owner

import (
	ownerdomain "github.com/harunoki/petnavi-services/api/internal/owner/domain"
)

type upsertBusinessRequest struct {
	Name        string  `json:"name"`
	ServiceType string  `json:"serviceType"`
	Address     string  `json:"address"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	IsOpen      bool    `json:"isOpen"`
}

type businessResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Name        string  `json:"name"`
	ServiceType string  `json:"serviceType"`
	Address     string  `json:"address"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	IsOpen      bool    `json:"isOpen"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// buildBusinessResponse はオーナードメイン Business を DTO に変換する。
func buildBusinessResponse(business ownerdomain.Business) businessResponse {
	return businessResponse{
		ID:          business.ID,
		OwnerID:     business.OwnerID,
		Name:        business.Name.String(),
		ServiceType: business.ServiceType.String(),
		Address:     business.Address.String(),
		Longitude:   business.Coordinates.Longitude(),
		Latitude:    business.Coordinates.Latitude(),
		IsOpen:      business.IsOpen,
		Rating:      business.Rating,
		ReviewCount: business.ReviewCount,
	}
}
