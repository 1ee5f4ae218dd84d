package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"alugo-backend/internal/security"
)

// Handlers groups the handler dependencies the router wires up.
type Handlers struct {
	Auth         *AuthHandler
	Catalog      *CatalogHandler
	Rental       *RentalHandler
	Notification *NotificationHandler
}

// NewRouter builds the full HTTP surface. The extend and track endpoints are
// public on purpose: the rental access code is the end client's credential.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, AccessLog)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public endpoints.
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods("POST")
	api.HandleFunc("/rentals/extend", h.Rental.Extend).Methods("POST")
	api.HandleFunc("/track/{accessCode}", h.Rental.Track).Methods("GET")

	// Owner endpoints, scoped by the shop id in the token.
	owner := api.NewRoute().Subrouter()
	owner.Use(NewAuthMiddleware(tokens).Middleware)

	owner.HandleFunc("/item-types", h.Catalog.CreateItemType).Methods("POST")
	owner.HandleFunc("/item-types", h.Catalog.ListItemTypes).Methods("GET")
	owner.HandleFunc("/item-types/{id}", h.Catalog.GetItemType).Methods("GET")
	owner.HandleFunc("/item-types/{id}", h.Catalog.UpdateItemType).Methods("PUT")

	owner.HandleFunc("/items", h.Catalog.CreateItem).Methods("POST")
	owner.HandleFunc("/items", h.Catalog.ListItems).Methods("GET")
	owner.HandleFunc("/items/{id}", h.Catalog.GetItem).Methods("GET")
	owner.HandleFunc("/items/{id}/status", h.Catalog.SetItemStatus).Methods("PATCH")

	owner.HandleFunc("/rentals", h.Rental.Create).Methods("POST")
	owner.HandleFunc("/rentals", h.Rental.List).Methods("GET")
	owner.HandleFunc("/rentals/finalize", h.Rental.Finalize).Methods("POST")
	owner.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Get).Methods("GET")

	owner.HandleFunc("/notifications", h.Notification.List).Methods("GET")
	owner.HandleFunc("/notifications/{id}/read", h.Notification.MarkAsRead).Methods("POST")

	return router
}
