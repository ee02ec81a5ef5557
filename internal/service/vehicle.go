package service

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

type vehicleService struct {
	vehicleRepo  repository.VehicleRepository
	locationRepo repository.LocationRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, locationRepo repository.LocationRepository) VehicleService {
	return &vehicleService{
		vehicleRepo:  vehicleRepo,
		locationRepo: locationRepo,
	}
}

func (s *vehicleService) Create(ctx context.Context, v *domain.Vehicle) error {
	if err := s.validate(ctx, v); err != nil {
		return err
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) Get(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) Update(ctx context.Context, v *domain.Vehicle) error {
	if err := s.validate(ctx, v); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) Delete(ctx context.Context, id int32) error {
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) validate(ctx context.Context, v *domain.Vehicle) error {
	if !v.Status.Valid() {
		return fmt.Errorf("unknown vehicle status %q: %w", v.Status, domain.ErrBusinessRule)
	}
	if v.DailyRentalFee.IsNegative() || v.DailyRentalFee.IsZero() {
		return fmt.Errorf("daily rental fee must be positive: %w", domain.ErrBusinessRule)
	}
	if _, err := s.locationRepo.GetByID(ctx, v.LocationID); err != nil {
		return fmt.Errorf("location: %w", err)
	}
	return nil
}

func (s *vehicleService) Search(ctx context.Context, c domain.VehicleSearchCriteria) ([]domain.Vehicle, int32, error) {
	// An availability window must be a valid rental range.
	if c.RentalDate != "" || c.ReturnDate != "" {
		if _, err := utils.RentalDays(c.RentalDate, c.ReturnDate); err != nil {
			return nil, 0, err
		}
	}
	return s.vehicleRepo.Search(ctx, c)
}
