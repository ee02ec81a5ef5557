package domain

import "github.com/shopspring/decimal"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusFaulty      VehicleStatus = "FAULTY"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusRented, VehicleStatusMaintenance, VehicleStatusFaulty:
		return true
	}
	return false
}

type Vehicle struct {
	ID              int32           `json:"id"`
	Name            string          `json:"name"`
	BrandID         int32           `json:"brand_id"`
	ModelID         int32           `json:"model_id"`
	ModelYear       int32           `json:"model_year"`
	ColorID         int32           `json:"color_id"`
	FuelTypeID      int32           `json:"fuel_type_id"`
	GearTypeID      int32           `json:"gear_type_id"`
	VehicleTypeID   int32           `json:"vehicle_type_id"`
	AirConditioning bool            `json:"air_conditioning"`
	Seats           int32           `json:"seats"`
	DailyRentalFee  decimal.Decimal `json:"daily_rental_fee"`
	// DiscountRate is stored and surfaced but intentionally not applied by the
	// pricing calculator; see ComputeTotal.
	DiscountRate    decimal.Decimal `json:"discount_rate"`
	MinDriverAge    int32           `json:"min_driver_age"`
	MinLicenseYears int32           `json:"min_license_years"`
	Status          VehicleStatus   `json:"status"`
	LocationID      int32           `json:"location_id"`
	FeatureIDs      []int32         `json:"feature_ids,omitempty"`
	CreatedOn       string          `json:"created_on"`
	UpdatedOn       string          `json:"updated_on"`
}

type VehicleSort string

const (
	VehicleSortPriceAsc  VehicleSort = "price_asc"
	VehicleSortPriceDesc VehicleSort = "price_desc"
	VehicleSortYearDesc  VehicleSort = "year_desc"
)

// VehicleSearchCriteria drives the storefront search. Zero-valued fields are
// ignored. When RentalDate and ReturnDate are both set, vehicles with an
// overlapping PENDING or APPROVED rental are excluded.
type VehicleSearchCriteria struct {
	LocationID      int32            `json:"location_id"`
	RentalDate      string           `json:"rental_date"`
	ReturnDate      string           `json:"return_date"`
	BrandID         int32            `json:"brand_id"`
	ModelID         int32            `json:"model_id"`
	VehicleTypeID   int32            `json:"vehicle_type_id"`
	FuelTypeID      int32            `json:"fuel_type_id"`
	GearTypeID      int32            `json:"gear_type_id"`
	AirConditioning *bool            `json:"air_conditioning,omitempty"`
	MinPrice        *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice        *decimal.Decimal `json:"max_price,omitempty"`
	FeatureIDs      []int32          `json:"feature_ids,omitempty"`
	MinModelYear    int32            `json:"min_model_year"`
	MaxModelYear    int32            `json:"max_model_year"`
	Sort            VehicleSort      `json:"sort"`
	Page            int32            `json:"page"`
	PageSize        int32            `json:"page_size"`
}
