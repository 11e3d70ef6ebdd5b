package request

// PackagePublishRequest creates an immutable package under a service.

type PackagePublishRequest struct {
	Name         string   `json:"name" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	DeliveryDays int      `json:"delivery_days" binding:"required,gt=0"`
	Features     []string `json:"features"`
}
