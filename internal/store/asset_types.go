package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"labstock-backend/internal/model"
)

// AssetTypeInput carries the client-supplied attributes of a category.
type AssetTypeInput struct {
	Name  string
	Icon  *string
	Color *string
}

// ListAssetTypes returns all categories ordered by name.
func (s *gormStore) ListAssetTypes(ctx context.Context) ([]model.AssetType, error) {
	var types []model.AssetType
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list asset types: %w", err)
	}
	return types, nil
}

// CreateAssetType persists a new category.
func (s *gormStore) CreateAssetType(ctx context.Context, in AssetTypeInput) (*model.AssetType, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationf("type name is required")
	}

	assetType := &model.AssetType{Name: name, Icon: in.Icon, Color: in.Color}
	if err := s.db.WithContext(ctx).Create(assetType).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrTypeNameExists
		}
		return nil, fmt.Errorf("failed to create asset type: %w", err)
	}
	return assetType, nil
}

// UpdateAssetType replaces a category's name, icon and color.
func (s *gormStore) UpdateAssetType(ctx context.Context, id int64, in AssetTypeInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return validationf("type name is required")
	}

	res := s.db.WithContext(ctx).Model(&model.AssetType{}).Where("id = ?", id).
		Updates(map[string]any{"name": name, "icon": in.Icon, "color": in.Color})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return ErrTypeNameExists
		}
		return fmt.Errorf("failed to update asset type %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTypeNotFound
	}
	return nil
}

// DeleteAssetType removes a category. Assets referencing it are never deleted;
// their reference is cleared inside the same transaction, so the weak
// reference semantics hold even without a database-level ON DELETE SET NULL.
func (s *gormStore) DeleteAssetType(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Asset{}).
			Where("asset_type_id = ?", id).
			Update("asset_type_id", nil).Error; err != nil {
			return fmt.Errorf("failed to clear references to asset type %d: %w", id, err)
		}

		res := tx.Delete(&model.AssetType{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete asset type %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTypeNotFound
		}
		return nil
	})
}
