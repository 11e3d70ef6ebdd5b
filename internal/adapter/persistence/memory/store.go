// Package memory provides a mutex-guarded in-memory implementation of the
// persistence ports. It backs STORAGE_DRIVER=memory for local runs and the
// cross-engine tests; semantics match the DynamoDB repositories, including
// the compare-and-set status writes and zero-value-on-miss reads.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"servicehub/internal/domain/entities"
	"servicehub/internal/usecase/interfaces"
)

type Store struct {
	mu           sync.Mutex
	bookings     map[string]entities.Booking
	transactions map[string]entities.PaymentTransaction
	packages     map[string]entities.Package
}

func NewStore() *Store {
	return &Store{
		bookings:     make(map[string]entities.Booking),
		transactions: make(map[string]entities.PaymentTransaction),
		packages:     make(map[string]entities.Package),
	}
}

// Bookings returns the IBookingRepository view of the store.
func (s *Store) Bookings() *BookingStore { return &BookingStore{s: s} }

// Transactions returns the IPaymentTransactionRepository view of the store.
func (s *Store) Transactions() *TransactionStore { return &TransactionStore{s: s} }

// Packages returns the IPackageRepository view of the store.
func (s *Store) Packages() *PackageStore { return &PackageStore{s: s} }

type BookingStore struct{ s *Store }

var _ interfaces.IBookingRepository = (*BookingStore)(nil)

func (r *BookingStore) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.bookings[b.ID] = b
	return b, nil
}

func (r *BookingStore) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.bookings[id], nil
}

func (r *BookingStore) UpdateStatus(ctx context.Context, id string, from, to entities.BookingStatus) (entities.Booking, error) {
	return r.cas(id, from, func(b *entities.Booking) {
		b.Status = to
	})
}

func (r *BookingStore) Cancel(ctx context.Context, id string, from entities.BookingStatus, reason string) (entities.Booking, error) {
	return r.cas(id, from, func(b *entities.Booking) {
		b.Status = entities.BookingStatusCancelled
		b.CancelReason = reason
	})
}

func (r *BookingStore) cas(id string, from entities.BookingStatus, mutate func(*entities.Booking)) (entities.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return entities.Booking{}, nil
	}
	if b.Status != from {
		return entities.Booking{}, interfaces.ErrVersionConflict
	}
	mutate(&b)
	b.UpdatedAt = time.Now().UTC()
	r.s.bookings[id] = b
	return b, nil
}

type TransactionStore struct{ s *Store }

var _ interfaces.IPaymentTransactionRepository = (*TransactionStore)(nil)

func (r *TransactionStore) Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transactions[tx.ID] = tx
	return tx, nil
}

func (r *TransactionStore) GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.transactions[id], nil
}

func (r *TransactionStore) GetByBookingID(ctx context.Context, bookingID string) (entities.PaymentTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, tx := range r.s.transactions {
		if tx.BookingID == bookingID {
			return tx, nil
		}
	}
	return entities.PaymentTransaction{}, nil
}

func (r *TransactionStore) UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, providerRef string) (entities.PaymentTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tx, ok := r.s.transactions[id]
	if !ok {
		return entities.PaymentTransaction{}, nil
	}
	if tx.Status != from {
		return entities.PaymentTransaction{}, interfaces.ErrVersionConflict
	}
	tx.Status = to
	if providerRef != "" {
		tx.ProviderReference = providerRef
	}
	tx.UpdatedAt = time.Now().UTC()
	r.s.transactions[id] = tx
	return tx, nil
}

type PackageStore struct{ s *Store }

var _ interfaces.IPackageRepository = (*PackageStore)(nil)

func (r *PackageStore) Create(ctx context.Context, p entities.Package) (entities.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.packages[p.ID] = p
	return p, nil
}

func (r *PackageStore) GetByID(ctx context.Context, id string) (entities.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.packages[id], nil
}

func (r *PackageStore) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Package, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Package, 0)
	for _, p := range r.s.packages {
		if p.ServiceID == serviceID {
			out = append(out, p)
		}
	}
	// Catalog order is publish order.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
