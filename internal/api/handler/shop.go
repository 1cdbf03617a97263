package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sweeplab/minesweeper-go/internal/api/middleware"
	"github.com/sweeplab/minesweeper-go/internal/api/request"
	"github.com/sweeplab/minesweeper-go/internal/api/response"
	"github.com/sweeplab/minesweeper-go/internal/services/shop"
)

// ShopHandler handles cosmetic purchase and equip endpoints
type ShopHandler struct {
	shopService *shop.Service
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *shop.Service) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// PurchaseSkin handles POST /api/v1/shop/skins/purchase
func (h *ShopHandler) PurchaseSkin(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.PurchaseSkinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.SkinID == "" {
		WriteError(w, NewInvalidRequestError("skin_id is required"))
		return
	}

	updated, err := h.shopService.PurchaseSkin(r.Context(), account.ID, req.SkinID, req.Cost)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BalanceResponse{
		Success:    true,
		NewBalance: updated.Coins,
	})
}

// EquipSkin handles POST /api/v1/shop/skins/equip
func (h *ShopHandler) EquipSkin(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.EquipSkinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.SkinID == "" {
		WriteError(w, NewInvalidRequestError("skin_id is required"))
		return
	}

	if _, err := h.shopService.EquipSkin(r.Context(), account.ID, req.SkinID); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EquipResponse{Success: true})
}

// EquipTitle handles POST /api/v1/titles/equip
func (h *ShopHandler) EquipTitle(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.EquipTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Title == "" {
		WriteError(w, NewInvalidRequestError("title is required"))
		return
	}

	if _, err := h.shopService.EquipTitle(r.Context(), account.ID, req.Title); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EquipResponse{Success: true})
}
