package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
	"carrental-backend/internal/utils"
)

type RentalHandler struct {
	rentalSvc service.RentalService
	audit     *auditor
}

func NewRentalHandler(rentalSvc service.RentalService, audit *auditor) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, audit: audit}
}

// rentalPayload is the writable subset of a rental. Status is only honored
// on updates, where the service guards the transition.
type rentalPayload struct {
	VehicleID         int32  `json:"vehicle_id"`
	UserID            int32  `json:"user_id"`
	PickupLocationID  int32  `json:"pickup_location_id"`
	DropOffLocationID int32  `json:"drop_off_location_id"`
	RentalDate        string `json:"rental_date"`
	ReturnDate        string `json:"return_date"`
	Status            string `json:"status"`
}

type rentalRequest struct {
	Rental               rentalPayload `json:"rental"`
	AdditionalProductIDs []int32       `json:"additionalProductIds"`
}

func (p *rentalPayload) validate(forUpdate bool) []FieldError {
	var fields []FieldError
	if p.VehicleID <= 0 {
		fields = append(fields, FieldError{Field: "vehicle_id", Message: "vehicle is required"})
	}
	if p.PickupLocationID <= 0 {
		fields = append(fields, FieldError{Field: "pickup_location_id", Message: "pickup location is required"})
	}
	if p.DropOffLocationID <= 0 {
		fields = append(fields, FieldError{Field: "drop_off_location_id", Message: "drop-off location is required"})
	}
	_, rentalDateErr := utils.ParseDate(p.RentalDate)
	if rentalDateErr != nil {
		fields = append(fields, FieldError{Field: "rental_date", Message: rentalDateErr.Error()})
	}
	_, returnDateErr := utils.ParseDate(p.ReturnDate)
	if returnDateErr != nil {
		fields = append(fields, FieldError{Field: "return_date", Message: returnDateErr.Error()})
	}
	if rentalDateErr == nil && returnDateErr == nil && p.ReturnDate <= p.RentalDate {
		fields = append(fields, FieldError{Field: "return_date", Message: "return date must be after rental date"})
	}
	if forUpdate && !domain.RentalStatus(p.Status).Valid() {
		fields = append(fields, FieldError{Field: "status", Message: "unknown rental status"})
	}
	return fields
}

func (p *rentalPayload) toDomain() *domain.Rental {
	return &domain.Rental{
		VehicleID:         p.VehicleID,
		UserID:            p.UserID,
		PickupLocationID:  p.PickupLocationID,
		DropOffLocationID: p.DropOffLocationID,
		RentalDate:        p.RentalDate,
		ReturnDate:        p.ReturnDate,
		Status:            domain.RentalStatus(p.Status),
	}
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := req.Rental.validate(false); len(fields) > 0 {
		writeValidationErrors(w, fields)
		return
	}

	created, err := h.rentalSvc.Create(r.Context(), actor, req.Rental.toDomain(), req.AdditionalProductIDs)
	if err != nil {
		h.audit.respondError(w, r, "rentals.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rental, products, payments, err := h.rentalSvc.Get(r.Context(), actor, id)
	if err != nil {
		h.audit.respondError(w, r, "rentals.get", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rental":              rental,
		"additional_products": products,
		"payments":            payments,
	})
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	q := r.URL.Query()
	filter := domain.RentalFilter{
		SearchQuery: q.Get("searchQuery"),
		Page:        queryInt32(q.Get("page"), 1),
		PageSize:    queryInt32(q.Get("pageSize"), 20),
	}
	if v := q.Get("rentalUserId"); v != "" {
		filter.UserID = queryInt32(v, 0)
	}
	if v := q.Get("status"); v != "" {
		status := domain.RentalStatus(v)
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, "unknown rental status")
			return
		}
		filter.Status = status
	}

	rentals, total, err := h.rentalSvc.List(r.Context(), actor, filter)
	if err != nil {
		h.audit.respondError(w, r, "rentals.list", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rentals": rentals,
		"total":   total,
	})
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := req.Rental.validate(true); len(fields) > 0 {
		writeValidationErrors(w, fields)
		return
	}

	if err := h.rentalSvc.Update(r.Context(), actor, id, req.Rental.toDomain(), req.AdditionalProductIDs); err != nil {
		h.audit.respondError(w, r, "rentals.update", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RentalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "rentals.approve", h.rentalSvc.Approve)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "rentals.complete", h.rentalSvc.Complete)
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "rentals.cancel", h.rentalSvc.Cancel)
}

func (h *RentalHandler) transition(w http.ResponseWriter, r *http.Request, action string, fn func(ctx context.Context, actor domain.Principal, rentalID int32) error) {
	actor, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := fn(r.Context(), actor, id); err != nil {
		h.audit.respondError(w, r, action, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.rentalSvc.Delete(r.Context(), actor, id); err != nil {
		h.audit.respondError(w, r, "rentals.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type paymentRequest struct {
	RentalID      int32           `json:"rentalId"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
}

func (h *RentalHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var fields []FieldError
	if req.RentalID <= 0 {
		fields = append(fields, FieldError{Field: "rentalId", Message: "rental is required"})
	}
	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		fields = append(fields, FieldError{Field: "paymentMethod", Message: err.Error()})
	}
	status, err := domain.ParsePaymentStatus(req.PaymentStatus)
	if err != nil {
		fields = append(fields, FieldError{Field: "paymentStatus", Message: err.Error()})
	}
	if len(fields) > 0 {
		writeValidationErrors(w, fields)
		return
	}

	payment := &domain.Payment{
		RentalID: req.RentalID,
		Amount:   req.PaymentAmount,
		Method:   method,
		Status:   status,
	}
	if err := h.rentalSvc.RecordPayment(r.Context(), actor, payment); err != nil {
		h.audit.respondError(w, r, "rentals.payment", err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return int32(id), nil
}

func queryInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return int32(v)
}
