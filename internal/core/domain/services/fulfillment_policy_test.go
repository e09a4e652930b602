package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/servicearea"
	"fulfillment/internal/core/domain/model/vendor"
	"fulfillment/internal/core/domain/services"
)

func newVendor(t *testing.T, location kernel.GeoPoint, radiusKm float64, areaID kernel.UUID, config vendor.FulfillmentConfig) *vendor.Vendor {
	t.Helper()
	v, err := vendor.NewVendor(kernel.NewUUID(), "Dosa Corner", location, radiusKm, areaID, config)
	require.NoError(t, err)
	return v
}

func newPolicy(t *testing.T, areas ...*servicearea.ServiceArea) *services.FulfillmentPolicy {
	t.Helper()
	resolver := newResolver(t, &fakeAreaProvider{areas: areas}, 0, nil)
	policy, err := services.NewFulfillmentPolicy(resolver)
	require.NoError(t, err)
	return policy
}

func TestFulfillmentPolicyValidateFulfillment(t *testing.T) {
	ctx := context.Background()
	allMethods := vendor.FulfillmentConfig{EatInEnabled: true, PickupEnabled: true, DeliveryEnabled: true}

	t.Run("should reject a disabled method", func(t *testing.T) {
		south := area(t, "south", squareRing(t, 12.80, 77.55, 12.90, 77.65))
		v := newVendor(t, point(t, 12.85, 77.60), 5, south.ID(),
			vendor.FulfillmentConfig{EatInEnabled: true, PickupEnabled: true})
		policy := newPolicy(t, south)

		addr := point(t, 12.86, 77.61)
		err := policy.ValidateFulfillment(ctx, v, order.Delivery, &addr)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrMethodNotEnabled)

		var methodErr *services.MethodNotEnabledError
		require.ErrorAs(t, err, &methodErr)
		assert.Equal(t, order.Delivery, methodErr.Method)
	})

	t.Run("should accept pickup and eat-in without an address", func(t *testing.T) {
		south := area(t, "south", squareRing(t, 12.80, 77.55, 12.90, 77.65))
		v := newVendor(t, point(t, 12.85, 77.60), 5, south.ID(), allMethods)
		policy := newPolicy(t, south)

		assert.NoError(t, policy.ValidateFulfillment(ctx, v, order.Pickup, nil))
		assert.NoError(t, policy.ValidateFulfillment(ctx, v, order.EatIn, nil))
	})

	t.Run("should ignore an address for pickup", func(t *testing.T) {
		south := area(t, "south", squareRing(t, 12.80, 77.55, 12.90, 77.65))
		v := newVendor(t, point(t, 12.85, 77.60), 5, south.ID(), allMethods)
		policy := newPolicy(t, south)

		// Far outside every area; pickup must still pass.
		addr := point(t, 20.00, 80.00)
		assert.NoError(t, policy.ValidateFulfillment(ctx, v, order.Pickup, &addr))
	})

	t.Run("should require an address for delivery", func(t *testing.T) {
		south := area(t, "south", squareRing(t, 12.80, 77.55, 12.90, 77.65))
		v := newVendor(t, point(t, 12.85, 77.60), 5, south.ID(), allMethods)
		policy := newPolicy(t, south)

		err := policy.ValidateFulfillment(ctx, v, order.Delivery, nil)

		assert.ErrorIs(t, err, services.ErrDeliveryAddressIsRequired)
	})

	t.Run("should reject an address outside every service area", func(t *testing.T) {
		south := area(t, "south", squareRing(t, 12.80, 77.55, 12.90, 77.65))
		v := newVendor(t, point(t, 12.85, 77.60), 5, south.ID(), allMethods)
		policy := newPolicy(t, south)

		addr := point(t, 20.00, 80.00)
		err := policy.ValidateFulfillment(ctx, v, order.Delivery, &addr)

		assert.ErrorIs(t, err, services.ErrAddressNotServiceable)
	})

	t.Run("should reject an address in a different service area", func(t *testing.T) {
		south := area(t, "south", squareRing(t, 12.80, 77.55, 12.90, 77.65))
		north := area(t, "north", squareRing(t, 12.95, 77.55, 13.05, 77.65))
		v := newVendor(t, point(t, 12.85, 77.60), 50, south.ID(), allMethods)
		policy := newPolicy(t, south, north)

		addr := point(t, 13.00, 77.60)
		err := policy.ValidateFulfillment(ctx, v, order.Delivery, &addr)

		require.ErrorIs(t, err, services.ErrVendorCannotReach)

		var reachErr *services.VendorReachError
		require.ErrorAs(t, err, &reachErr)
		assert.False(t, reachErr.SameArea)
		assert.Greater(t, reachErr.DistanceKm, 0.0)
	})

	t.Run("should reject an address beyond the service radius", func(t *testing.T) {
		south := area(t, "south", squareRing(t, 12.80, 77.50, 12.90, 77.70))
		v := newVendor(t, point(t, 12.85, 77.51), 1, south.ID(), allMethods)
		policy := newPolicy(t, south)

		// Same area, roughly 9.7 km east of the vendor.
		addr := point(t, 12.85, 77.60)
		err := policy.ValidateFulfillment(ctx, v, order.Delivery, &addr)

		require.ErrorIs(t, err, services.ErrVendorCannotReach)

		var reachErr *services.VendorReachError
		require.ErrorAs(t, err, &reachErr)
		assert.True(t, reachErr.SameArea)
		assert.InDelta(t, 9.7, reachErr.DistanceKm, 0.5)
		assert.Equal(t, 1.0, reachErr.RadiusKm)
	})

	t.Run("should accept a reachable delivery address", func(t *testing.T) {
		south := area(t, "south", squareRing(t, 12.80, 77.55, 12.90, 77.65))
		v := newVendor(t, point(t, 12.85, 77.60), 5, south.ID(), allMethods)
		policy := newPolicy(t, south)

		addr := point(t, 12.86, 77.61)
		assert.NoError(t, policy.ValidateFulfillment(ctx, v, order.Delivery, &addr))
	})
}
