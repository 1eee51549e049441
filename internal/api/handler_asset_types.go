package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labstock-backend/internal/model"
	"labstock-backend/internal/store"
)

type assetTypeRequest struct {
	Name  string  `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// ListAssetTypes handles GET /api/asset-types.
func (h *Handler) ListAssetTypes(c *gin.Context) {
	types, err := h.store.ListAssetTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if types == nil {
		types = []model.AssetType{}
	}
	c.JSON(http.StatusOK, gin.H{"assetTypes": types})
}

// CreateAssetType handles POST /api/asset-types.
func (h *Handler) CreateAssetType(c *gin.Context) {
	var req assetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	assetType, err := h.store.CreateAssetType(c.Request.Context(), store.AssetTypeInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "type created", "id": assetType.ID})
}

// UpdateAssetType handles PUT /api/asset-types/:id.
func (h *Handler) UpdateAssetType(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid asset type id"})
		return
	}

	var req assetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err = h.store.UpdateAssetType(c.Request.Context(), id, store.AssetTypeInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "type updated"})
}

// DeleteAssetType handles DELETE /api/asset-types/:id. Assets referencing the
// type survive with their reference cleared.
func (h *Handler) DeleteAssetType(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid asset type id"})
		return
	}

	if err := h.store.DeleteAssetType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
