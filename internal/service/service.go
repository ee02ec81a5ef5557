package service

import (
	"context"

	"carrental-backend/internal/domain"
)

type AuthService interface {
	// Register creates a USER account and returns it with a signed token.
	Register(ctx context.Context, name, email, password, dateOfBirth, licenseIssueDate string) (*domain.User, string, error)
	// Login returns a signed bearer token on valid credentials.
	Login(ctx context.Context, email, password string) (string, error)
	// UpdateProfile changes the caller's name, email or password. Empty
	// fields keep their current value.
	UpdateProfile(ctx context.Context, actor domain.Principal, name, email, password string) (*domain.User, error)
}

type RentalService interface {
	Create(ctx context.Context, actor domain.Principal, rental *domain.Rental, productIDs []int32) (*domain.Rental, error)
	Update(ctx context.Context, actor domain.Principal, rentalID int32, rental *domain.Rental, productIDs []int32) error
	Approve(ctx context.Context, actor domain.Principal, rentalID int32) error
	Complete(ctx context.Context, actor domain.Principal, rentalID int32) error
	Cancel(ctx context.Context, actor domain.Principal, rentalID int32) error
	Delete(ctx context.Context, actor domain.Principal, rentalID int32) error
	Get(ctx context.Context, actor domain.Principal, rentalID int32) (*domain.Rental, []domain.AdditionalProduct, []domain.Payment, error)
	List(ctx context.Context, actor domain.Principal, filter domain.RentalFilter) ([]domain.Rental, int32, error)
	RecordPayment(ctx context.Context, actor domain.Principal, payment *domain.Payment) error
}

type VehicleService interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Get(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	Search(ctx context.Context, criteria domain.VehicleSearchCriteria) ([]domain.Vehicle, int32, error)
}

// CatalogService serves the read-only reference data behind the storefront
// search form.
type CatalogService interface {
	Brands(ctx context.Context) ([]domain.Brand, error)
	Models(ctx context.Context, brandID int32) ([]domain.VehicleModel, error)
	Colors(ctx context.Context) ([]domain.Color, error)
	FuelTypes(ctx context.Context) ([]domain.FuelType, error)
	GearTypes(ctx context.Context) ([]domain.GearType, error)
	VehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
	Features(ctx context.Context) ([]domain.VehicleFeature, error)
	Locations(ctx context.Context) ([]domain.Location, error)
	AdditionalProducts(ctx context.Context) ([]domain.AdditionalProduct, error)
}

type EmailService interface {
	SendRentalRequested(ctx context.Context, to, name, vehicleName, rentalDate, returnDate string) error
	SendRentalApproved(ctx context.Context, to, name, vehicleName, rentalDate string) error
	SendRentalCancelled(ctx context.Context, to, name, vehicleName string) error
	SendPickupReminder(ctx context.Context, to, name, vehicleName, rentalDate string) error
}
