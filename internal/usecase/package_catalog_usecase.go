package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"servicehub/internal/domain/entities"
	"servicehub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IPackageCatalogUseCase exposes the provider-side package surface: publish
// an immutable package and list a service's packages for selection.

type IPackageCatalogUseCase interface {
	Publish(ctx context.Context, serviceID, name string, price float64, deliveryDays int, features []string) (entities.Package, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Package, error)
}

type PackageCatalogUseCase struct {
	repo interfaces.IPackageRepository
}

var _ IPackageCatalogUseCase = (*PackageCatalogUseCase)(nil)

func NewPackageCatalogUseCase(repo interfaces.IPackageRepository) *PackageCatalogUseCase {
	return &PackageCatalogUseCase{repo: repo}
}

func (u *PackageCatalogUseCase) Publish(ctx context.Context, serviceID, name string, price float64, deliveryDays int, features []string) (entities.Package, error) {
	serviceID = strings.TrimSpace(serviceID)
	name = strings.TrimSpace(name)
	if serviceID == "" {
		return entities.Package{}, fmt.Errorf("%w: service id is required", ErrValidation)
	}
	if name == "" {
		return entities.Package{}, fmt.Errorf("%w: package name is required", ErrValidation)
	}
	if price <= 0 {
		return entities.Package{}, fmt.Errorf("%w: package price must be greater than zero", ErrValidation)
	}
	if deliveryDays <= 0 {
		return entities.Package{}, fmt.Errorf("%w: delivery days must be greater than zero", ErrValidation)
	}

	p := entities.Package{
		ID:           uuid.NewString(),
		ServiceID:    serviceID,
		Name:         name,
		Price:        price,
		DeliveryDays: deliveryDays,
		Features:     features,
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *PackageCatalogUseCase) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Package, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, fmt.Errorf("%w: service id is required", ErrValidation)
	}
	return u.repo.ListByServiceID(ctx, serviceID)
}
