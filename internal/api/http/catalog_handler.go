package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) CreateItemType(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req itemTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	t := &domain.ItemType{
		ShopID:               claims.ShopID,
		Name:                 req.Name,
		PricingModel:         domain.PricingModel(req.PricingModel),
		PricePerMinuteCents:  req.PricePerMinuteCents,
		PricePerDayCents:     req.PricePerDayCents,
		PriceFixedCents:      req.PriceFixedCents,
		PriceBlockCents:      req.PriceBlockCents,
		BlockDurationMinutes: req.BlockDurationMinutes,
	}
	if err := h.catalogSvc.CreateItemType(r.Context(), t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *CatalogHandler) GetItemType(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := h.catalogSvc.GetItemType(r.Context(), claims.ShopID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *CatalogHandler) UpdateItemType(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req itemTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	t := &domain.ItemType{
		ID:                   id,
		ShopID:               claims.ShopID,
		Name:                 req.Name,
		PricingModel:         domain.PricingModel(req.PricingModel),
		PricePerMinuteCents:  req.PricePerMinuteCents,
		PricePerDayCents:     req.PricePerDayCents,
		PriceFixedCents:      req.PriceFixedCents,
		PriceBlockCents:      req.PriceBlockCents,
		BlockDurationMinutes: req.BlockDurationMinutes,
	}
	if err := h.catalogSvc.UpdateItemType(r.Context(), t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *CatalogHandler) ListItemTypes(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	types, err := h.catalogSvc.ListItemTypes(r.Context(), claims.ShopID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: types, Total: int64(len(types))})
}

func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	item := &domain.Item{
		ShopID: claims.ShopID,
		TypeID: req.TypeID,
		Label:  req.Label,
		Notes:  req.Notes,
	}
	if err := h.catalogSvc.CreateItem(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := h.catalogSvc.GetItem(r.Context(), claims.ShopID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	page, pageSize := paginationParams(r)
	items, total, err := h.catalogSvc.ListItems(r.Context(), claims.ShopID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: total})
}

func (h *CatalogHandler) SetItemStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req itemStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.catalogSvc.SetItemStatus(r.Context(), claims.ShopID, id, domain.ItemStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, domain.ErrValidation
	}
	return id, nil
}
