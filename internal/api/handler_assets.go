package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labstock-backend/internal/store"
)

// assetRequest is the request body for asset creation and update.
type assetRequest struct {
	Name         string  `json:"name"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serial_number"`
	AssetTypeID  *int64  `json:"asset_type_id"`
	Status       string  `json:"status"`
	Location     *string `json:"location"`
	Condition    string  `json:"condition"`
	PurchaseDate *string `json:"purchase_date"`
	Description  *string `json:"description"`
}

func (r assetRequest) toInput() store.AssetInput {
	return store.AssetInput{
		Name:         r.Name,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		AssetTypeID:  r.AssetTypeID,
		Status:       r.Status,
		Location:     r.Location,
		Condition:    r.Condition,
		PurchaseDate: r.PurchaseDate,
		Description:  r.Description,
	}
}

// ListAssets handles GET /api/assets.
func (h *Handler) ListAssets(c *gin.Context) {
	assets, err := h.store.ListAssets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if assets == nil {
		assets = []store.AssetView{}
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// CreateAsset handles POST /api/assets.
func (h *Handler) CreateAsset(c *gin.Context) {
	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	asset, err := h.store.CreateAsset(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "asset created", "id": asset.ID})
}

// UpdateAsset handles PUT /api/assets/:id.
func (h *Handler) UpdateAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid asset id"})
		return
	}

	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.store.UpdateAsset(c.Request.Context(), id, req.toInput()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "asset updated"})
}

// DeleteAsset handles DELETE /api/assets/:id.
func (h *Handler) DeleteAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid asset id"})
		return
	}

	if err := h.store.DeleteAsset(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
