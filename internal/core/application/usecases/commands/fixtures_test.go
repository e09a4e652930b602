package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/servicearea"
	"fulfillment/internal/core/domain/model/vendor"
	"fulfillment/internal/core/domain/services"
)

// Fixtures model a single Bengaluru-like service area with a vendor near
// its center.

type fakeAreaProvider struct {
	areas []*servicearea.ServiceArea
}

func (f *fakeAreaProvider) ActiveAreas(context.Context) ([]*servicearea.ServiceArea, error) {
	return f.areas, nil
}

func point(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func squareRing(t *testing.T, swLat, swLon, neLat, neLon float64) servicearea.Ring {
	t.Helper()
	ring, err := servicearea.NewRing([]kernel.GeoPoint{
		point(t, swLat, swLon),
		point(t, swLat, neLon),
		point(t, neLat, neLon),
		point(t, neLat, swLon),
	})
	require.NoError(t, err)
	return ring
}

func testArea(t *testing.T) *servicearea.ServiceArea {
	t.Helper()
	a, err := servicearea.NewServiceArea(
		kernel.NewUUID(), "central", squareRing(t, 12.80, 77.50, 13.00, 77.70), nil)
	require.NoError(t, err)
	return a
}

func testVendor(t *testing.T, areaID kernel.UUID) *vendor.Vendor {
	t.Helper()
	v, err := vendor.NewVendor(kernel.NewUUID(), "Dosa Corner", point(t, 12.90, 77.60), 5, areaID,
		vendor.FulfillmentConfig{EatInEnabled: true, PickupEnabled: true, DeliveryEnabled: true})
	require.NoError(t, err)
	return v
}

func testPolicy(t *testing.T, areas ...*servicearea.ServiceArea) *services.FulfillmentPolicy {
	t.Helper()
	resolver, err := services.NewServiceAreaResolver(&fakeAreaProvider{areas: areas}, 0, nil)
	require.NoError(t, err)
	policy, err := services.NewFulfillmentPolicy(resolver)
	require.NoError(t, err)
	return policy
}

func testDeliveryOrder(t *testing.T, vendorID kernel.UUID) *order.Order {
	t.Helper()
	addr, err := order.NewDeliveryAddress(kernel.NewUUID(), point(t, 12.91, 77.61), "12 MG Road")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), vendorID, order.Delivery, &addr)
	require.NoError(t, err)
	return o
}

// readyOrder returns a delivery order advanced to ReadyForPickup.
func readyOrder(t *testing.T, vendorID kernel.UUID) *order.Order {
	t.Helper()
	o := testDeliveryOrder(t, vendorID)
	require.NoError(t, o.TransitionTo(order.Accepted, ""))
	require.NoError(t, o.TransitionTo(order.Preparing, ""))
	require.NoError(t, o.TransitionTo(order.ReadyForPickup, ""))
	return o
}

// readyOrderAt returns a ReadyForPickup delivery order destined for the
// given coordinate.
func readyOrderAt(t *testing.T, vendorID kernel.UUID, lat, lon float64) *order.Order {
	t.Helper()
	addr, err := order.NewDeliveryAddress(kernel.NewUUID(), point(t, lat, lon), "7 Residency Road")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), vendorID, order.Delivery, &addr)
	require.NoError(t, err)
	require.NoError(t, o.TransitionTo(order.Accepted, ""))
	require.NoError(t, o.TransitionTo(order.Preparing, ""))
	require.NoError(t, o.TransitionTo(order.ReadyForPickup, ""))
	return o
}

func availablePartner(t *testing.T, lat, lon float64, areaID kernel.UUID) *courier.DeliveryPartner {
	t.Helper()
	loc := point(t, lat, lon)
	p, err := courier.RestoreDeliveryPartner(kernel.NewUUID(), "Ravi", courier.Available, &loc, areaID)
	require.NoError(t, err)
	return p
}
