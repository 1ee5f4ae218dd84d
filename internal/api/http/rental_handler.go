package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), claims.ShopID, service.CreateRentalParams{
		ItemID:          req.ItemID,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		DurationMinutes: req.DurationMinutes,
		Days:            req.Days,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// Extend is public: the access code is the credential.
func (h *RentalHandler) Extend(w http.ResponseWriter, r *http.Request) {
	var req extendRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.ExtendRental(r.Context(), req.AccessCode, req.Minutes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, extendRentalResponse{
		EndTime:        rental.EndTime,
		ExtensionCount: rental.ExtensionCount,
	})
}

func (h *RentalHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req finalizeRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.rentalSvc.FinalizeRental(r.Context(), claims.ShopID, req.RentalID)
	if err != nil {
		// The loser of the finalize race still gets the authoritative
		// totals, so a 409 is success-adjacent for the caller.
		if errors.Is(err, domain.ErrRentalAlreadyFinalized) && result != nil {
			writeJSON(w, http.StatusConflict, finalizeRentalResponse{
				TotalCostCents:      result.TotalCents,
				TotalOverageMinutes: result.OverageMinutes,
				ActualEndTime:       result.ActualEndTime,
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, finalizeRentalResponse{
		TotalCostCents:      result.TotalCents,
		TotalOverageMinutes: result.OverageMinutes,
		ActualEndTime:       result.ActualEndTime,
	})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, domain.ErrValidation)
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), claims.ShopID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	page, pageSize := paginationParams(r)
	status := r.URL.Query().Get("status")

	rentals, total, err := h.rentalSvc.ListRentals(r.Context(), claims.ShopID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: rentals, Total: total})
}

// Track serves the unauthenticated countdown page data.
func (h *RentalHandler) Track(w http.ResponseWriter, r *http.Request) {
	accessCode := mux.Vars(r)["accessCode"]

	rental, err := h.rentalSvc.TrackRental(r.Context(), accessCode)
	if err != nil {
		writeError(w, err)
		return
	}

	var remaining int64
	if rental.Status == domain.RentalStatusActive {
		if d := time.Until(rental.EndTime); d > 0 {
			remaining = int64(d.Seconds())
		}
	}
	writeJSON(w, http.StatusOK, trackResponse{
		Status:           rental.Status,
		StartTime:        rental.StartTime,
		EndTime:          rental.EndTime,
		ActualEndTime:    rental.ActualEndTime,
		RemainingSeconds: remaining,
		ExtensionCount:   rental.ExtensionCount,
	})
}

func paginationParams(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
