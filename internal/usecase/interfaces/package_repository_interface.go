package interfaces

import (
	"context"

	"servicehub/internal/domain/entities"
)

// IPackageRepository abstracts persistence for Package.
//
// Packages are immutable once created: no update operation exists. The
// booking engine only reads; Create serves the provider-side publishing flow.

type IPackageRepository interface {
	Create(ctx context.Context, p entities.Package) (entities.Package, error)
	GetByID(ctx context.Context, id string) (entities.Package, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Package, error)
}
