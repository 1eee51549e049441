package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labstock-backend/internal/store"
)

type loanRequest struct {
	AssetID            int64   `json:"asset_id" binding:"required"`
	BorrowerName       string  `json:"borrower_name"`
	ExpectedReturnDate *string `json:"expected_return_date"`
	Notes              *string `json:"notes"`
}

// LoanOut handles POST /api/records: hands an asset to a borrower.
func (h *Handler) LoanOut(c *gin.Context) {
	var req loanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	record, err := h.store.LoanOut(c.Request.Context(), store.LoanInput{
		AssetID:            req.AssetID,
		BorrowerName:       req.BorrowerName,
		ExpectedReturnDate: req.ExpectedReturnDate,
		Notes:              req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "asset loaned out", "id": record.ID})
}

type returnRequest struct {
	AssetID int64 `json:"asset_id" binding:"required"`
}

// ReturnAsset handles PUT /api/records: closes the open loan for an asset.
func (h *Handler) ReturnAsset(c *gin.Context) {
	var req returnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.store.ReturnAsset(c.Request.Context(), req.AssetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "asset returned"})
}

// ListLoanRecords handles GET /api/records?page&limit.
func (h *Handler) ListLoanRecords(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	result, err := h.store.ListLoanRecords(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
