package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

// Services groups everything the router wires handlers to.
type Services struct {
	Auth    service.AuthService
	Rental  service.RentalService
	Vehicle service.VehicleService
	Catalog service.CatalogService
}

// NewRouter builds the full API surface under /api/v1.
//
// Public routes serve the storefront before login: vehicle search, vehicle
// detail and the reference lists. Everything under /rentals requires a
// bearer token; rental approval, full listings and vehicle administration
// additionally require an admin role.
func NewRouter(svcs Services, tokenManager security.TokenManager, actionLogRepo repository.ActionLogRepository) *mux.Router {
	audit := newAuditor(actionLogRepo)
	mw := NewMiddleware(tokenManager)

	authHandler := NewAuthHandler(svcs.Auth, audit)
	rentalHandler := NewRentalHandler(svcs.Rental, audit)
	vehicleHandler := NewVehicleHandler(svcs.Vehicle, audit)
	catalogHandler := NewCatalogHandler(svcs.Catalog, audit)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/users/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/users/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/vehicles/search", vehicleHandler.Search).Methods("POST")
	api.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Get).Methods("GET")
	api.HandleFunc("/brands", catalogHandler.Brands).Methods("GET")
	api.HandleFunc("/models", catalogHandler.Models).Methods("GET")
	api.HandleFunc("/colors", catalogHandler.Colors).Methods("GET")
	api.HandleFunc("/fuel-types", catalogHandler.FuelTypes).Methods("GET")
	api.HandleFunc("/gear-types", catalogHandler.GearTypes).Methods("GET")
	api.HandleFunc("/vehicle-types", catalogHandler.VehicleTypes).Methods("GET")
	api.HandleFunc("/features", catalogHandler.Features).Methods("GET")
	api.HandleFunc("/locations", catalogHandler.Locations).Methods("GET")
	api.HandleFunc("/additional-products", catalogHandler.AdditionalProducts).Methods("GET")

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(mw.Authenticate)
	authed.HandleFunc("/users/me", authHandler.UpdateProfile).Methods("PUT")
	authed.HandleFunc("/rentals", rentalHandler.Create).Methods("POST")
	authed.HandleFunc("/rentals", rentalHandler.List).Methods("GET")
	authed.HandleFunc("/rentals/payment", rentalHandler.RecordPayment).Methods("POST")
	authed.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods("GET")
	authed.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods("DELETE")
	authed.HandleFunc("/rentals/cancel/{id:[0-9]+}", rentalHandler.Cancel).Methods("PUT")

	// Admin only
	admin := api.NewRoute().Subrouter()
	admin.Use(mw.Authenticate, mw.RequireRoles(domain.RoleAdmin, domain.RoleSuperadmin))
	admin.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Update).Methods("PUT")
	admin.HandleFunc("/rentals/approve/{id:[0-9]+}", rentalHandler.Approve).Methods("PUT")
	admin.HandleFunc("/rentals/complete/{id:[0-9]+}", rentalHandler.Complete).Methods("PUT")
	admin.HandleFunc("/vehicles", vehicleHandler.Create).Methods("POST")
	admin.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Update).Methods("PUT")
	admin.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Delete).Methods("DELETE")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	return router
}
