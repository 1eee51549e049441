package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"labstock-backend/internal/model"
	"labstock-backend/internal/parse"
)

// AssetInput carries the client-supplied attributes of an asset.
type AssetInput struct {
	Name         string
	Model        *string
	SerialNumber *string
	AssetTypeID  *int64
	Status       string
	Location     *string
	Condition    string
	PurchaseDate *string // raw client date, normalized here
	Description  *string
}

// AssetView is one row of the asset listing, with the category name and the
// open loan's borrower joined in.
type AssetView struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Model              *string     `json:"model"`
	SerialNumber       *string     `json:"serial_number"`
	AssetTypeID        *int64      `json:"asset_type_id"`
	Status             string      `json:"status"`
	Location           *string     `json:"location"`
	Condition          string      `json:"condition"`
	PurchaseDate       *model.Date `json:"purchase_date"`
	Description        *string     `json:"description"`
	AssetTypeName      *string     `json:"asset_type_name"`
	BorrowerName       *string     `json:"borrower_name"`
	ExpectedReturnDate *model.Date `json:"expected_return_date"`
}

// ListAssets returns all assets newest-first, each with its type name and, if
// currently out, the open loan's borrower and due date.
func (s *gormStore) ListAssets(ctx context.Context) ([]AssetView, error) {
	var views []AssetView
	err := s.db.WithContext(ctx).
		Table("assets AS a").
		Select("a.id, a.name, a.model, a.serial_number, a.asset_type_id, a.status, "+
			"a.location, a.condition, a.purchase_date, a.description, "+
			"t.name AS asset_type_name, r.borrower_name, r.expected_return_date").
		Joins("LEFT JOIN asset_types t ON a.asset_type_id = t.id").
		Joins("LEFT JOIN loan_records r ON r.asset_id = a.id AND r.actual_return_date IS NULL").
		Order("a.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return views, nil
}

// CreateAsset validates and persists a new asset. Status defaults to in-stock
// and condition to good.
func (s *gormStore) CreateAsset(ctx context.Context, in AssetInput) (*model.Asset, error) {
	asset, err := buildAsset(in, true)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(asset).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrSerialExists
		}
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

// UpdateAsset applies a full attribute update. When the update moves the asset
// out of on-loan it also closes the newest open loan record, reproducing the
// return protocol from the edit path. That close is tolerant: if the ledger
// has no open record the edit proceeds anyway, since the user's intent is an
// attribute edit and should not be blocked by ledger drift.
func (s *gormStore) UpdateAsset(ctx context.Context, id int64, in AssetInput) error {
	asset, err := buildAsset(in, false)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Asset
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return fmt.Errorf("failed to read asset %d: %w", id, err)
		}

		if current.Status == model.StatusOnLoan && asset.Status != model.StatusOnLoan {
			if _, err := closeNewestOpenLoan(tx, id); err != nil {
				return err
			}
		}
		if current.Status != model.StatusOnLoan && asset.Status == model.StatusOnLoan {
			// Only the loan operation may open a loan; an edit that forces
			// on-loan would leave the ledger without a matching record.
			return validationf("status cannot be set to %s directly; use the loan operation", model.StatusOnLoan)
		}

		res := tx.Model(&model.Asset{}).Where("id = ?", id).Updates(map[string]any{
			"name":          asset.Name,
			"model":         asset.Model,
			"serial_number": asset.SerialNumber,
			"asset_type_id": asset.AssetTypeID,
			"status":        asset.Status,
			"location":      asset.Location,
			"condition":     asset.Condition,
			"purchase_date": asset.PurchaseDate,
			"description":   asset.Description,
		})
		if res.Error != nil {
			return res.Error
		}
		return nil
	})
	if err != nil {
		if isDuplicate(err) {
			return ErrSerialExists
		}
		return err
	}
	return nil
}

// DeleteAsset removes an asset, refusing while any loan remains unreturned.
func (s *gormStore) DeleteAsset(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&model.LoanRecord{}).
			Where("asset_id = ? AND actual_return_date IS NULL", id).
			Count(&open).Error; err != nil {
			return fmt.Errorf("failed to check open loans for asset %d: %w", id, err)
		}
		if open > 0 {
			return ErrAssetHasOpenLoan
		}

		res := tx.Delete(&model.Asset{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete asset %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAssetNotFound
		}
		return nil
	})
}

// buildAsset validates input and assembles a model.Asset. withDefaults applies
// the creation defaults (in-stock, good) when status or condition is blank.
func buildAsset(in AssetInput, withDefaults bool) (*model.Asset, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("asset name is required")
	}
	if in.AssetTypeID == nil {
		return nil, validationf("asset type is required")
	}

	status := in.Status
	condition := in.Condition
	if withDefaults {
		if status == "" {
			status = model.StatusInStock
		}
		if condition == "" {
			condition = model.ConditionGood
		}
	}
	if !model.ValidStatus(status) {
		return nil, validationf("unknown status %q", status)
	}
	if !model.ValidCondition(condition) {
		return nil, validationf("unknown condition %q", condition)
	}

	serial := in.SerialNumber
	if serial != nil && strings.TrimSpace(*serial) == "" {
		// Blank serials stay NULL so the unique index only bites real values.
		serial = nil
	}

	var purchase *model.Date
	if in.PurchaseDate != nil && *in.PurchaseDate != "" {
		normalized, err := parse.NormalizeDate(*in.PurchaseDate)
		if err != nil {
			return nil, validationf("invalid purchase date: %v", err)
		}
		d, _ := model.ParseDate(normalized)
		purchase = &d
	}

	return &model.Asset{
		Name:         strings.TrimSpace(in.Name),
		Model:        in.Model,
		SerialNumber: serial,
		AssetTypeID:  in.AssetTypeID,
		Status:       status,
		Location:     in.Location,
		Condition:    condition,
		PurchaseDate: purchase,
		Description:  in.Description,
	}, nil
}
