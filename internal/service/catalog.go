package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type catalogService struct {
	refRepo      repository.ReferenceRepository
	locationRepo repository.LocationRepository
	productRepo  repository.AdditionalProductRepository
}

func NewCatalogService(
	refRepo repository.ReferenceRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.AdditionalProductRepository,
) CatalogService {
	return &catalogService{
		refRepo:      refRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
	}
}

func (s *catalogService) Brands(ctx context.Context) ([]domain.Brand, error) {
	return s.refRepo.ListBrands(ctx)
}

func (s *catalogService) Models(ctx context.Context, brandID int32) ([]domain.VehicleModel, error) {
	return s.refRepo.ListModels(ctx, brandID)
}

func (s *catalogService) Colors(ctx context.Context) ([]domain.Color, error) {
	return s.refRepo.ListColors(ctx)
}

func (s *catalogService) FuelTypes(ctx context.Context) ([]domain.FuelType, error) {
	return s.refRepo.ListFuelTypes(ctx)
}

func (s *catalogService) GearTypes(ctx context.Context) ([]domain.GearType, error) {
	return s.refRepo.ListGearTypes(ctx)
}

func (s *catalogService) VehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	return s.refRepo.ListVehicleTypes(ctx)
}

func (s *catalogService) Features(ctx context.Context) ([]domain.VehicleFeature, error) {
	return s.refRepo.ListFeatures(ctx)
}

func (s *catalogService) Locations(ctx context.Context) ([]domain.Location, error) {
	return s.locationRepo.List(ctx)
}

func (s *catalogService) AdditionalProducts(ctx context.Context) ([]domain.AdditionalProduct, error) {
	return s.productRepo.List(ctx)
}
