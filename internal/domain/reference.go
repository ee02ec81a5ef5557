package domain

// Reference data backing the storefront search form. Served read-only; the
// back office maintains these tables directly.

type Brand struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type VehicleModel struct {
	ID      int32  `json:"id"`
	BrandID int32  `json:"brand_id"`
	Name    string `json:"name"`
}

type Color struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type FuelType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type GearType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type VehicleType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type VehicleFeature struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
