package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstock-backend/internal/model"
)

func TestCreateAssetType(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assetType, err := s.CreateAssetType(ctx, AssetTypeInput{
		Name:  "  VR Headset  ",
		Icon:  strptr("RectangleGoggles"),
		Color: strptr("from-red-500 to-rose-600"),
	})
	require.NoError(t, err)
	assert.Equal(t, "VR Headset", assetType.Name, "name should be trimmed")

	_, err = s.CreateAssetType(ctx, AssetTypeInput{Name: "VR Headset"})
	assert.ErrorIs(t, err, ErrTypeNameExists)

	_, err = s.CreateAssetType(ctx, AssetTypeInput{Name: "   "})
	assert.True(t, IsValidation(err))
}

func TestUpdateAssetType(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assetType := seedType(t, s, "Camera")
	other := seedType(t, s, "Tablet")

	err := s.UpdateAssetType(ctx, assetType.ID, AssetTypeInput{
		Name: "Mirrorless Camera",
		Icon: strptr("Camera"),
	})
	require.NoError(t, err)

	types, err := s.ListAssetTypes(ctx)
	require.NoError(t, err)
	names := make([]string, len(types))
	for i, at := range types {
		names[i] = at.Name
	}
	assert.Equal(t, []string{"Mirrorless Camera", "Tablet"}, names, "listing is name-ordered")

	err = s.UpdateAssetType(ctx, other.ID, AssetTypeInput{Name: "Mirrorless Camera"})
	assert.ErrorIs(t, err, ErrTypeNameExists)

	err = s.UpdateAssetType(ctx, 9999, AssetTypeInput{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrTypeNotFound)

	err = s.UpdateAssetType(ctx, assetType.ID, AssetTypeInput{Name: ""})
	assert.True(t, IsValidation(err))
}

func TestDeleteAssetTypeClearsReferences(t *testing.T) {
	s, gormDB := newTestStore(t)
	ctx := context.Background()

	assetType := seedType(t, s, "VR Headset")
	first := seedAsset(t, s, "Quest 3", assetType.ID)
	second := seedAsset(t, s, "Quest 2", assetType.ID)

	require.NoError(t, s.DeleteAssetType(ctx, assetType.ID))

	// The assets survive the type's deletion; only the reference is cleared.
	for _, id := range []int64{first.ID, second.ID} {
		var reloaded model.Asset
		require.NoError(t, gormDB.First(&reloaded, id).Error)
		assert.Nil(t, reloaded.AssetTypeID)
	}

	assert.ErrorIs(t, s.DeleteAssetType(ctx, assetType.ID), ErrTypeNotFound)
}
