package http

import (
	"net/http"
	"strconv"

	"carrental-backend/internal/service"
)

// CatalogHandler exposes the read-only reference lists the storefront search
// form is built from.
type CatalogHandler struct {
	catalogSvc service.CatalogService
	audit      *auditor
}

func NewCatalogHandler(catalogSvc service.CatalogService, audit *auditor) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc, audit: audit}
}

func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.Brands(r.Context())
	if err != nil {
		h.audit.respondError(w, r, "catalog.brands", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Models lists vehicle models, optionally narrowed to one brand via the
// brandId query parameter.
func (h *CatalogHandler) Models(w http.ResponseWriter, r *http.Request) {
	var brandID int32
	if raw := r.URL.Query().Get("brandId"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v <= 0 {
			writeError(w, http.StatusBadRequest, "invalid brandId")
			return
		}
		brandID = int32(v)
	}
	items, err := h.catalogSvc.Models(r.Context(), brandID)
	if err != nil {
		h.audit.respondError(w, r, "catalog.models", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) Colors(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.Colors(r.Context())
	if err != nil {
		h.audit.respondError(w, r, "catalog.colors", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) FuelTypes(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.FuelTypes(r.Context())
	if err != nil {
		h.audit.respondError(w, r, "catalog.fuel_types", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) GearTypes(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.GearTypes(r.Context())
	if err != nil {
		h.audit.respondError(w, r, "catalog.gear_types", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) VehicleTypes(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.VehicleTypes(r.Context())
	if err != nil {
		h.audit.respondError(w, r, "catalog.vehicle_types", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) Features(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.Features(r.Context())
	if err != nil {
		h.audit.respondError(w, r, "catalog.features", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) Locations(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.Locations(r.Context())
	if err != nil {
		h.audit.respondError(w, r, "catalog.locations", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) AdditionalProducts(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogSvc.AdditionalProducts(r.Context())
	if err != nil {
		h.audit.respondError(w, r, "catalog.additional_products", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
