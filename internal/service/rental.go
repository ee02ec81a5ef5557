package service

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	productRepo  repository.AdditionalProductRepository
	paymentRepo  repository.PaymentRepository
	emailSvc     EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	productRepo repository.AdditionalProductRepository,
	paymentRepo repository.PaymentRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		paymentRepo:  paymentRepo,
		emailSvc:     emailSvc,
	}
}

func (s *rentalService) Create(ctx context.Context, actor domain.Principal, rt *domain.Rental, productIDs []int32) (*domain.Rental, error) {
	// Renters book for themselves; only back-office staff may book on behalf
	// of another user.
	if !actor.IsAdmin() {
		rt.UserID = actor.UserID
	}

	vehicle, user, products, err := s.validateBooking(ctx, rt, productIDs)
	if err != nil {
		return nil, err
	}

	rt.Status = domain.RentalStatusPending
	rt.RequestDate = time.Now().UTC().Format(time.RFC3339)
	rt.AdminActionDate = nil
	rt.AdminUserID = nil

	if err := s.rentalRepo.CreateWithProducts(ctx, rt, productIDs); err != nil {
		return nil, err
	}

	total, err := utils.ComputeTotal(rt.RentalDate, rt.ReturnDate, vehicle.DailyRentalFee, productFees(products))
	if err != nil {
		return nil, err
	}
	rt.TotalPrice = total

	if err := s.emailSvc.SendRentalRequested(ctx, user.Email, user.Name, vehicle.Name, rt.RentalDate, rt.ReturnDate); err != nil {
		logger.Warn("Failed to send rental request email", "rental_id", rt.ID, "error", err)
	}
	return rt, nil
}

// validateBooking runs the full business checks for a new or edited booking:
// dates, locations, vehicle position and status, eligibility, products.
func (s *rentalService) validateBooking(ctx context.Context, rt *domain.Rental, productIDs []int32) (*domain.Vehicle, *domain.User, []domain.AdditionalProduct, error) {
	if _, err := utils.RentalDays(rt.RentalDate, rt.ReturnDate); err != nil {
		return nil, nil, nil, err
	}

	pickup, err := s.locationRepo.GetByID(ctx, rt.PickupLocationID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("pickup location: %w", err)
	}
	dropOff, err := s.locationRepo.GetByID(ctx, rt.DropOffLocationID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("drop-off location: %w", err)
	}
	if !pickup.Active || !dropOff.Active {
		return nil, nil, nil, fmt.Errorf("location is not active: %w", domain.ErrBusinessRule)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, rt.VehicleID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("vehicle: %w", err)
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, nil, nil, domain.ErrVehicleUnavailable
	}
	if vehicle.LocationID != rt.PickupLocationID {
		return nil, nil, nil, domain.ErrVehicleNotAtPickup
	}

	user, err := s.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("renter: %w", err)
	}
	if err := s.checkEligibility(user, vehicle); err != nil {
		return nil, nil, nil, err
	}

	seen := make(map[int32]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, dup := seen[id]; dup {
			return nil, nil, nil, fmt.Errorf("duplicate additional product %d: %w", id, domain.ErrBusinessRule)
		}
		seen[id] = struct{}{}
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(products) != len(productIDs) {
		return nil, nil, nil, fmt.Errorf("additional product: %w", domain.ErrNotFound)
	}
	return vehicle, user, products, nil
}

func (s *rentalService) checkEligibility(user *domain.User, vehicle *domain.Vehicle) error {
	dob, err := utils.ParseDate(user.DateOfBirth)
	if err != nil {
		return fmt.Errorf("renter date of birth: %w", err)
	}
	issued, err := utils.ParseDate(user.LicenseIssueDate)
	if err != nil {
		return fmt.Errorf("renter license issue date: %w", err)
	}
	if !utils.MeetsRequirements(dob, issued, time.Now().UTC(), vehicle.MinDriverAge, vehicle.MinLicenseYears) {
		return domain.ErrNotEligible
	}
	return nil
}

func productFees(products []domain.AdditionalProduct) []decimal.Decimal {
	fees := make([]decimal.Decimal, len(products))
	for i, p := range products {
		fees[i] = p.Fee
	}
	return fees
}

func (s *rentalService) Update(ctx context.Context, actor domain.Principal, rentalID int32, rt *domain.Rental, productIDs []int32) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	existing, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if existing.Status == domain.RentalStatusCompleted {
		return domain.ErrRentalCompleted
	}
	if !rt.Status.Valid() {
		return domain.ErrInvalidTransition
	}

	// A status-only edit is an admin transition in disguise: enforce the
	// state machine, skip date and vehicle-position validation (the vehicle
	// may legitimately have moved since the booking was made).
	statusOnlyChange := existing.SameBooking(rt) && rt.Status != existing.Status
	if statusOnlyChange {
		return s.transition(ctx, actor, existing, rt.Status)
	}

	if _, _, _, err := s.validateBooking(ctx, rt, productIDs); err != nil {
		return err
	}
	if rt.Status != existing.Status && !domain.CanTransition(existing.Status, rt.Status) {
		return domain.ErrInvalidTransition
	}

	rt.ID = existing.ID
	rt.RequestDate = existing.RequestDate
	rt.AdminActionDate = existing.AdminActionDate
	rt.AdminUserID = existing.AdminUserID

	// A full edit that also moves the status is an admin action like any
	// other transition: stamp the admin fields on the new status.
	if rt.Status != existing.Status {
		now := time.Now().UTC().Format(time.RFC3339)
		rt.AdminActionDate = &now
		adminID := actor.UserID
		rt.AdminUserID = &adminID
	}

	if err := s.rentalRepo.UpdateWithProducts(ctx, rt, productIDs, true); err != nil {
		return err
	}
	if rt.Status == domain.RentalStatusCompleted && rt.DropOffLocationID != rt.PickupLocationID {
		return s.vehicleRepo.UpdateLocation(ctx, rt.VehicleID, rt.DropOffLocationID)
	}
	return nil
}

// transition applies an admin state change, stamping the admin action fields
// and handling the side effects each target status carries.
func (s *rentalService) transition(ctx context.Context, actor domain.Principal, rt *domain.Rental, to domain.RentalStatus) error {
	if rt.Status == domain.RentalStatusCompleted {
		return domain.ErrRentalCompleted
	}
	if !domain.CanTransition(rt.Status, to) {
		return domain.ErrInvalidTransition
	}

	now := time.Now().UTC().Format(time.RFC3339)
	rt.Status = to
	rt.AdminActionDate = &now
	adminID := actor.UserID
	rt.AdminUserID = &adminID

	if err := s.rentalRepo.UpdateStatus(ctx, rt); err != nil {
		return err
	}

	switch to {
	case domain.RentalStatusCompleted:
		// A rental returned to a different location moves the vehicle there.
		if rt.DropOffLocationID != rt.PickupLocationID {
			if err := s.vehicleRepo.UpdateLocation(ctx, rt.VehicleID, rt.DropOffLocationID); err != nil {
				return err
			}
		}
	case domain.RentalStatusApproved:
		s.notify(ctx, rt, func(user *domain.User, vehicle *domain.Vehicle) error {
			return s.emailSvc.SendRentalApproved(ctx, user.Email, user.Name, vehicle.Name, rt.RentalDate)
		})
	case domain.RentalStatusCancelled:
		s.notify(ctx, rt, func(user *domain.User, vehicle *domain.Vehicle) error {
			return s.emailSvc.SendRentalCancelled(ctx, user.Email, user.Name, vehicle.Name)
		})
	}
	return nil
}

// notify sends a best-effort email to the renter; failures are logged, never
// surfaced.
func (s *rentalService) notify(ctx context.Context, rt *domain.Rental, send func(*domain.User, *domain.Vehicle) error) {
	user, err := s.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		logger.Warn("Failed to load renter for notification", "rental_id", rt.ID, "error", err)
		return
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, rt.VehicleID)
	if err != nil {
		logger.Warn("Failed to load vehicle for notification", "rental_id", rt.ID, "error", err)
		return
	}
	if err := send(user, vehicle); err != nil {
		logger.Warn("Failed to send rental notification", "rental_id", rt.ID, "error", err)
	}
}

func (s *rentalService) Approve(ctx context.Context, actor domain.Principal, rentalID int32) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	return s.transition(ctx, actor, rt, domain.RentalStatusApproved)
}

func (s *rentalService) Complete(ctx context.Context, actor domain.Principal, rentalID int32) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	return s.transition(ctx, actor, rt, domain.RentalStatusCompleted)
}

func (s *rentalService) Cancel(ctx context.Context, actor domain.Principal, rentalID int32) error {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		// Owners may cancel their own booking, but only before it starts.
		if rt.UserID != actor.UserID {
			return domain.ErrForbidden
		}
		if !startsInFuture(rt.RentalDate) {
			return domain.ErrForbidden
		}
	}
	return s.transition(ctx, actor, rt, domain.RentalStatusCancelled)
}

func (s *rentalService) Delete(ctx context.Context, actor domain.Principal, rentalID int32) error {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		if rt.UserID != actor.UserID {
			return domain.ErrForbidden
		}
		if !startsInFuture(rt.RentalDate) {
			return domain.ErrForbidden
		}
	}
	return s.rentalRepo.Delete(ctx, rentalID)
}

func startsInFuture(rentalDate string) bool {
	start, err := utils.ParseDate(rentalDate)
	if err != nil {
		return false
	}
	today, _ := utils.ParseDate(time.Now().UTC().Format("2006-01-02"))
	return start.After(today)
}

func (s *rentalService) Get(ctx context.Context, actor domain.Principal, rentalID int32) (*domain.Rental, []domain.AdditionalProduct, []domain.Payment, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !actor.IsAdmin() && rt.UserID != actor.UserID {
		return nil, nil, nil, domain.ErrForbidden
	}

	products, err := s.productRepo.GetByIDs(ctx, rt.ProductIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := s.attachTotal(ctx, rt, products); err != nil {
		return nil, nil, nil, err
	}
	payments, err := s.paymentRepo.ListByRental(ctx, rentalID)
	if err != nil {
		return nil, nil, nil, err
	}
	return rt, products, payments, nil
}

func (s *rentalService) List(ctx context.Context, actor domain.Principal, filter domain.RentalFilter) ([]domain.Rental, int32, error) {
	// Regular users only ever see their own rentals.
	if !actor.IsAdmin() {
		filter.UserID = actor.UserID
	}
	rentals, count, err := s.rentalRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range rentals {
		products, err := s.productRepo.GetByIDs(ctx, rentals[i].ProductIDs)
		if err != nil {
			return nil, 0, err
		}
		if err := s.attachTotal(ctx, &rentals[i], products); err != nil {
			return nil, 0, err
		}
	}
	return rentals, count, nil
}

func (s *rentalService) attachTotal(ctx context.Context, rt *domain.Rental, products []domain.AdditionalProduct) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, rt.VehicleID)
	if err != nil {
		return err
	}
	total, err := utils.ComputeTotal(rt.RentalDate, rt.ReturnDate, vehicle.DailyRentalFee, productFees(products))
	if err != nil {
		return err
	}
	rt.TotalPrice = total
	return nil
}

func (s *rentalService) RecordPayment(ctx context.Context, actor domain.Principal, p *domain.Payment) error {
	rt, err := s.rentalRepo.GetByID(ctx, p.RentalID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && rt.UserID != actor.UserID {
		return domain.ErrForbidden
	}
	if rt.Status == domain.RentalStatusCancelled {
		return fmt.Errorf("cannot record a payment for a cancelled rental: %w", domain.ErrBusinessRule)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("payment amount must be positive: %w", domain.ErrBusinessRule)
	}
	p.TransactionRef = uuid.NewString()
	return s.paymentRepo.Create(ctx, p)
}
