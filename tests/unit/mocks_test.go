package unit

import (
	"context"

	"carrental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) UpdateLocation(ctx context.Context, vehicleID, locationID int32) error {
	args := m.Called(ctx, vehicleID, locationID)
	return args.Error(0)
}
func (m *MockVehicleRepo) Search(ctx context.Context, criteria domain.VehicleSearchCriteria) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockLocationRepo
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}
func (m *MockLocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateWithProducts(ctx context.Context, rental *domain.Rental, productIDs []int32) error {
	args := m.Called(ctx, rental, productIDs)
	return args.Error(0)
}
func (m *MockRentalRepo) UpdateWithProducts(ctx context.Context, rental *domain.Rental, productIDs []int32, checkAvailability bool) error {
	args := m.Called(ctx, rental, productIDs, checkAvailability)
	return args.Error(0)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, filter domain.RentalFilter) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) HasOverlap(ctx context.Context, vehicleID int32, rentalDate, returnDate string, excludeID int32) (bool, error) {
	args := m.Called(ctx, vehicleID, rentalDate, returnDate, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) List(ctx context.Context) ([]domain.AdditionalProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdditionalProduct), args.Error(1)
}
func (m *MockProductRepo) GetByIDs(ctx context.Context, ids []int32) ([]domain.AdditionalProduct, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.AdditionalProduct), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalRequested(ctx context.Context, to, name, vehicleName, rentalDate, returnDate string) error {
	args := m.Called(ctx, to, name, vehicleName, rentalDate, returnDate)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalApproved(ctx context.Context, to, name, vehicleName, rentalDate string) error {
	args := m.Called(ctx, to, name, vehicleName, rentalDate)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalCancelled(ctx context.Context, to, name, vehicleName string) error {
	args := m.Called(ctx, to, name, vehicleName)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, to, name, vehicleName, rentalDate string) error {
	args := m.Called(ctx, to, name, vehicleName, rentalDate)
	return args.Error(0)
}
