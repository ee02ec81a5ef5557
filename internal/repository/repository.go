package repository

import (
	"context"

	"carrental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	// UpdateLocation moves a vehicle to another location, used when a rental
	// completes at a drop-off different from the pickup.
	UpdateLocation(ctx context.Context, vehicleID, locationID int32) error
	Search(ctx context.Context, criteria domain.VehicleSearchCriteria) ([]domain.Vehicle, int32, error)
}

type LocationRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
}

type RentalRepository interface {
	// CreateWithProducts inserts the rental and its product assignments in a
	// single serializable transaction that re-checks availability. Returns
	// domain.ErrVehicleUnavailable when an overlapping PENDING or APPROVED
	// rental exists for the same vehicle.
	CreateWithProducts(ctx context.Context, rental *domain.Rental, productIDs []int32) error
	// UpdateWithProducts rewrites the rental row and replaces its product
	// assignments (delete-all, re-insert) in one transaction. When
	// checkAvailability is set the overlap check runs inside the same
	// transaction, excluding the rental itself.
	UpdateWithProducts(ctx context.Context, rental *domain.Rental, productIDs []int32, checkAvailability bool) error
	// UpdateStatus writes status and admin action fields only.
	UpdateStatus(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, int32, error)
	Delete(ctx context.Context, id int32) error
	// HasOverlap reports whether another rental for the vehicle with status
	// PENDING or APPROVED overlaps [rentalDate, returnDate). excludeID 0
	// means no exclusion.
	HasOverlap(ctx context.Context, vehicleID int32, rentalDate, returnDate string, excludeID int32) (bool, error)
}

type AdditionalProductRepository interface {
	List(ctx context.Context) ([]domain.AdditionalProduct, error)
	GetByIDs(ctx context.Context, ids []int32) ([]domain.AdditionalProduct, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error)
}

type ActionLogRepository interface {
	Create(ctx context.Context, entry *domain.ActionLog) error
}

type ReferenceRepository interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ListModels(ctx context.Context, brandID int32) ([]domain.VehicleModel, error)
	ListColors(ctx context.Context) ([]domain.Color, error)
	ListFuelTypes(ctx context.Context) ([]domain.FuelType, error)
	ListGearTypes(ctx context.Context) ([]domain.GearType, error)
	ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
	ListFeatures(ctx context.Context) ([]domain.VehicleFeature, error)
}
