package courier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPartner(t *testing.T) *courier.DeliveryPartner {
	t.Helper()
	p, err := courier.NewDeliveryPartner(kernel.NewUUID(), "Asha", kernel.NewUUID())
	require.NoError(t, err)
	return p
}

func TestNewDeliveryPartner(t *testing.T) {
	t.Run("should create offline partner without location", func(t *testing.T) {
		p := newPartner(t)

		assert.Equal(t, courier.Offline, p.Status())
		assert.Nil(t, p.Location())
		assert.False(t, p.IsMatchable())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := courier.NewDeliveryPartner(kernel.NewUUID(), "", kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should require valid ids", func(t *testing.T) {
		var zero kernel.UUID
		_, err := courier.NewDeliveryPartner(zero, "Asha", kernel.NewUUID())
		require.Error(t, err)

		_, err = courier.NewDeliveryPartner(kernel.NewUUID(), "Asha", zero)
		require.Error(t, err)
	})
}

func TestDeliveryPartner_UpdateLocation(t *testing.T) {
	location, err := kernel.NewGeoPoint(12.92, 77.61)
	require.NoError(t, err)

	t.Run("should bring offline partner back as available", func(t *testing.T) {
		p := newPartner(t)

		require.NoError(t, p.UpdateLocation(location))

		assert.Equal(t, courier.Available, p.Status())
		require.NotNil(t, p.Location())
		assert.Equal(t, 12.92, p.Location().Latitude())
		assert.True(t, p.IsMatchable())
	})

	t.Run("should not change busy partner status", func(t *testing.T) {
		p := newPartner(t)
		require.NoError(t, p.UpdateLocation(location))
		p.MarkBusy()

		require.NoError(t, p.UpdateLocation(location))

		assert.Equal(t, courier.Busy, p.Status())
	})

	t.Run("should reject unconstructed location", func(t *testing.T) {
		p := newPartner(t)
		var zero kernel.GeoPoint

		require.Error(t, p.UpdateLocation(zero))
		assert.Nil(t, p.Location())
	})
}

func TestDeliveryPartner_StatusTransitions(t *testing.T) {
	location, err := kernel.NewGeoPoint(12.92, 77.61)
	require.NoError(t, err)

	t.Run("should clear location when going offline", func(t *testing.T) {
		p := newPartner(t)
		require.NoError(t, p.UpdateLocation(location))

		p.GoOffline()

		assert.Equal(t, courier.Offline, p.Status())
		assert.Nil(t, p.Location())
	})

	t.Run("should exclude busy partners from matching", func(t *testing.T) {
		p := newPartner(t)
		require.NoError(t, p.UpdateLocation(location))

		p.MarkBusy()
		assert.False(t, p.IsMatchable())

		p.MarkAvailable()
		assert.True(t, p.IsMatchable())
	})
}

func TestRestoreDeliveryPartner(t *testing.T) {
	t.Run("should restore available partner with location", func(t *testing.T) {
		location, err := kernel.NewGeoPoint(12.92, 77.61)
		require.NoError(t, err)

		p, err := courier.RestoreDeliveryPartner(
			kernel.NewUUID(), "Asha", courier.Available, &location, kernel.NewUUID())

		require.NoError(t, err)
		assert.True(t, p.IsMatchable())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := courier.RestoreDeliveryPartner(
			kernel.NewUUID(), "Asha", courier.PartnerStatusUnknown, nil, kernel.NewUUID())

		require.Error(t, err)
	})
}

func TestDeliveryPartner_Validate(t *testing.T) {
	t.Run("should fail for direct struct construction", func(t *testing.T) {
		var p courier.DeliveryPartner
		require.Error(t, p.Validate())
	})
}
