package http

import (
	"encoding/json"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
	audit      *auditor
}

func NewVehicleHandler(vehicleSvc service.VehicleService, audit *auditor) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc, audit: audit}
}

// Search is public; the storefront calls it before any login.
func (h *VehicleHandler) Search(w http.ResponseWriter, r *http.Request) {
	var criteria domain.VehicleSearchCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if criteria.Page <= 0 {
		criteria.Page = 1
	}
	if criteria.PageSize <= 0 || criteria.PageSize > 100 {
		criteria.PageSize = 20
	}

	vehicles, total, err := h.vehicleSvc.Search(r.Context(), criteria)
	if err != nil {
		h.audit.respondError(w, r, "vehicles.search", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"total":    total,
	})
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	vehicle, err := h.vehicleSvc.Get(r.Context(), id)
	if err != nil {
		h.audit.respondError(w, r, "vehicles.get", err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validateVehicle(&vehicle); len(fields) > 0 {
		writeValidationErrors(w, fields)
		return
	}
	if err := h.vehicleSvc.Create(r.Context(), &vehicle); err != nil {
		h.audit.respondError(w, r, "vehicles.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var vehicle domain.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	vehicle.ID = id
	if fields := validateVehicle(&vehicle); len(fields) > 0 {
		writeValidationErrors(w, fields)
		return
	}
	if err := h.vehicleSvc.Update(r.Context(), &vehicle); err != nil {
		h.audit.respondError(w, r, "vehicles.update", err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.vehicleSvc.Delete(r.Context(), id); err != nil {
		h.audit.respondError(w, r, "vehicles.delete", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "vehicle deleted"})
}

func validateVehicle(v *domain.Vehicle) []FieldError {
	var fields []FieldError
	if v.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if v.BrandID <= 0 {
		fields = append(fields, FieldError{Field: "brand_id", Message: "brand is required"})
	}
	if v.ModelID <= 0 {
		fields = append(fields, FieldError{Field: "model_id", Message: "model is required"})
	}
	if v.LocationID <= 0 {
		fields = append(fields, FieldError{Field: "location_id", Message: "location is required"})
	}
	if !v.DailyRentalFee.IsPositive() {
		fields = append(fields, FieldError{Field: "daily_rental_fee", Message: "daily rental fee must be positive"})
	}
	if v.Status != "" && !v.Status.Valid() {
		fields = append(fields, FieldError{Field: "status", Message: "unknown vehicle status"})
	}
	return fields
}
