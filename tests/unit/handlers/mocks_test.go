package handlers

import (
	"context"

	"carrental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, dateOfBirth, licenseIssueDate string) (*domain.User, string, error) {
	args := m.Called(ctx, name, email, password, dateOfBirth, licenseIssueDate)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) UpdateProfile(ctx context.Context, actor domain.Principal, name, email, password string) (*domain.User, error) {
	args := m.Called(ctx, actor, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Create(ctx context.Context, actor domain.Principal, rental *domain.Rental, productIDs []int32) (*domain.Rental, error) {
	args := m.Called(ctx, actor, rental, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Update(ctx context.Context, actor domain.Principal, rentalID int32, rental *domain.Rental, productIDs []int32) error {
	args := m.Called(ctx, actor, rentalID, rental, productIDs)
	return args.Error(0)
}
func (m *MockRentalService) Approve(ctx context.Context, actor domain.Principal, rentalID int32) error {
	args := m.Called(ctx, actor, rentalID)
	return args.Error(0)
}
func (m *MockRentalService) Complete(ctx context.Context, actor domain.Principal, rentalID int32) error {
	args := m.Called(ctx, actor, rentalID)
	return args.Error(0)
}
func (m *MockRentalService) Cancel(ctx context.Context, actor domain.Principal, rentalID int32) error {
	args := m.Called(ctx, actor, rentalID)
	return args.Error(0)
}
func (m *MockRentalService) Delete(ctx context.Context, actor domain.Principal, rentalID int32) error {
	args := m.Called(ctx, actor, rentalID)
	return args.Error(0)
}
func (m *MockRentalService) Get(ctx context.Context, actor domain.Principal, rentalID int32) (*domain.Rental, []domain.AdditionalProduct, []domain.Payment, error) {
	args := m.Called(ctx, actor, rentalID)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*domain.Rental), args.Get(1).([]domain.AdditionalProduct), args.Get(2).([]domain.Payment), args.Error(3)
}
func (m *MockRentalService) List(ctx context.Context, actor domain.Principal, filter domain.RentalFilter) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, actor, filter)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalService) RecordPayment(ctx context.Context, actor domain.Principal, payment *domain.Payment) error {
	args := m.Called(ctx, actor, payment)
	return args.Error(0)
}

// MockVehicleService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleService) Get(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleService) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleService) Search(ctx context.Context, criteria domain.VehicleSearchCriteria) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Brands(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Brand), args.Error(1)
}
func (m *MockCatalogService) Models(ctx context.Context, brandID int32) ([]domain.VehicleModel, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).([]domain.VehicleModel), args.Error(1)
}
func (m *MockCatalogService) Colors(ctx context.Context) ([]domain.Color, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Color), args.Error(1)
}
func (m *MockCatalogService) FuelTypes(ctx context.Context) ([]domain.FuelType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FuelType), args.Error(1)
}
func (m *MockCatalogService) GearTypes(ctx context.Context) ([]domain.GearType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.GearType), args.Error(1)
}
func (m *MockCatalogService) VehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleType), args.Error(1)
}
func (m *MockCatalogService) Features(ctx context.Context) ([]domain.VehicleFeature, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VehicleFeature), args.Error(1)
}
func (m *MockCatalogService) Locations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}
func (m *MockCatalogService) AdditionalProducts(ctx context.Context) ([]domain.AdditionalProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdditionalProduct), args.Error(1)
}

// MockActionLogRepo
type MockActionLogRepo struct {
	mock.Mock
}

func (m *MockActionLogRepo) Create(ctx context.Context, entry *domain.ActionLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
