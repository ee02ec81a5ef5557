package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.LocationRepository
	repository.RentalRepository
	repository.AdditionalProductRepository
	repository.PaymentRepository
	repository.ActionLogRepository
	repository.ReferenceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                          db,
		UserRepository:              NewUserRepository(db),
		VehicleRepository:           NewVehicleRepository(db),
		LocationRepository:          NewLocationRepository(db),
		RentalRepository:            NewRentalRepository(db),
		AdditionalProductRepository: NewAdditionalProductRepository(db),
		PaymentRepository:           NewPaymentRepository(db),
		ActionLogRepository:         NewActionLogRepository(db),
		ReferenceRepository:         NewReferenceRepository(db),
	}
}
