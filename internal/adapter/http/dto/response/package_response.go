package response

import (
	"time"

	"servicehub/internal/domain/entities"
)

type PackageResponse struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"service_id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	DeliveryDays int       `json:"delivery_days"`
	Features     []string  `json:"features,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromPackage(p entities.Package) PackageResponse {
	return PackageResponse{
		ID:           p.ID,
		ServiceID:    p.ServiceID,
		Name:         p.Name,
		Price:        p.Price,
		DeliveryDays: p.DeliveryDays,
		Features:     p.Features,
		CreatedAt:    p.CreatedAt,
	}
}

func FromPackages(ps []entities.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPackage(p))
	}
	return out
}
