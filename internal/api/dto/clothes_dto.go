package dto

import "github.com/spec-kit/clothes-service/internal/domain"

// ClothesRequest is the create and full-replace payload.
type ClothesRequest struct {
	Name     string  `json:"name" validate:"required,min=5,max=120"`
	Color    string  `json:"color" validate:"required,oneof=pink black white yellow"`
	Size     string  `json:"size" validate:"required,oneof=xs s m l xl xxl"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,url,max=255"`
}

// ColorValue returns the validated color.
func (r ClothesRequest) ColorValue() domain.Color { return domain.Color(r.Color) }

// SizeValue returns the validated size.
func (r ClothesRequest) SizeValue() domain.Size { return domain.Size(r.Size) }

// ClothesListResponse wraps a catalog listing.
type ClothesListResponse struct {
	Data []domain.Clothes `json:"data"`
}
