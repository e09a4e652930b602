package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/servicearea"
	"fulfillment/internal/core/domain/model/vendor"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

func TestMatchCouriersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	area := testArea(t)
	v := testVendor(t, area.ID())
	testOrder := readyOrder(t, v.ID())

	near := availablePartner(t, 12.905, 77.60, area.ID())
	farther := availablePartner(t, 12.92, 77.60, area.ID())
	partners := []*courier.DeliveryPartner{farther, near}

	cmd, err := commands.NewMatchCouriersCommand(testOrder.ID(), commands.DefaultSearchRadiusKm)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	vendorRepo := new(MockVendorRepository)
	areaRepo := new(MockServiceAreaRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.On("ServiceAreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Get", ctx, v.ServiceAreaID()).Return(area, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetAllAvailableInArea", ctx, area.ID()).Return(partners, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("NotifyAssignmentAvailable", ctx, mock.AnythingOfType("ports.AssignmentNotification")).
		Return(nil).Twice()

	factory := new(MockMatchingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchCouriersCommandHandler(factory, services.NewCandidateSelector(), notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.NotifiedCount)
	require.Len(t, result.CandidateIDs, 2)
	assert.True(t, result.CandidateIDs[0].IsEqual(near.ID()))
	assert.InDelta(t, 1.55, result.EstimatedDistanceKm, 0.05)
	notifier.AssertExpectations(t)
}

func TestMatchCouriersCommandHandler_Handle_QuotesTripDistanceAndPayout(t *testing.T) {
	ctx := t.Context()

	area := testArea(t)
	v := testVendor(t, area.ID())
	testOrder := readyOrder(t, v.ID())

	// Partner parked right next to the vendor: the quoted trip distance must
	// still be the ~1.55 km vendor-to-address leg, not the partner's
	// near-zero approach.
	adjacent := availablePartner(t, 12.9001, 77.6001, area.ID())

	cmd, err := commands.NewMatchCouriersCommand(testOrder.ID(), commands.DefaultSearchRadiusKm)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	vendorRepo := new(MockVendorRepository)
	areaRepo := new(MockServiceAreaRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.On("ServiceAreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Get", ctx, v.ServiceAreaID()).Return(area, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetAllAvailableInArea", ctx, area.ID()).
			Return([]*courier.DeliveryPartner{adjacent}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	var sent ports.AssignmentNotification
	notifier.On("NotifyAssignmentAvailable", ctx, mock.AnythingOfType("ports.AssignmentNotification")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(ports.AssignmentNotification)
		}).Return(nil).Once()

	factory := new(MockMatchingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchCouriersCommandHandler(factory, services.NewCandidateSelector(), notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, result.NotifiedCount)
	assert.InDelta(t, 1.55, result.EstimatedDistanceKm, 0.05)

	assert.True(t, sent.OrderID.IsEqual(testOrder.ID()))
	assert.Equal(t, "Dosa Corner", sent.VendorName)
	assert.InDelta(t, 12.90, sent.VendorLocation.Latitude(), 0.0001)
	assert.InDelta(t, 77.60, sent.VendorLocation.Longitude(), 0.0001)
	assert.InDelta(t, 12.91, sent.DeliveryPoint.Latitude(), 0.0001)
	assert.InDelta(t, 77.61, sent.DeliveryPoint.Longitude(), 0.0001)
	assert.Equal(t, "12 MG Road", sent.DeliveryText)
	assert.InDelta(t, 1.55, sent.EstimatedDistanceKm, 0.05)
	assert.Less(t, sent.DistanceKm, 0.1)
	assert.InDelta(t, 45.5, sent.PayoutAmount, 0.5)
}

func TestMatchCouriersCommandHandler_Handle_AddressOutsideCoverage(t *testing.T) {
	tests := map[string]func(t *testing.T, v *vendor.Vendor) (*order.Order, *servicearea.ServiceArea){
		"address left the boundary": func(t *testing.T, v *vendor.Vendor) (*order.Order, *servicearea.ServiceArea) {
			area := testArea(t)
			return readyOrderAt(t, v.ID(), 20.00, 80.00), area
		},
		"area deactivated": func(t *testing.T, v *vendor.Vendor) (*order.Order, *servicearea.ServiceArea) {
			area := testArea(t)
			area.Deactivate()
			return readyOrder(t, v.ID()), area
		},
	}

	for name, build := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()

			v := testVendor(t, kernel.NewUUID())
			testOrder, area := build(t, v)

			cmd, err := commands.NewMatchCouriersCommand(testOrder.ID(), commands.DefaultSearchRadiusKm)
			require.NoError(t, err)

			orderRepo := new(MockOrderRepository)
			vendorRepo := new(MockVendorRepository)
			areaRepo := new(MockServiceAreaRepository)
			uow := new(MockUoW)
			notifier := new(MockNotifier)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orderRepo).Once(),
				orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
				uow.On("VendorRepository").Return(vendorRepo).Once(),
				vendorRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
				uow.On("ServiceAreaRepository").Return(areaRepo).Once(),
				areaRepo.On("Get", ctx, v.ServiceAreaID()).Return(area, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockMatchingUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewMatchCouriersCommandHandler(factory, services.NewCandidateSelector(), notifier)
			result, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Zero(t, result.NotifiedCount)
			assert.Empty(t, result.CandidateIDs)
			uow.AssertNotCalled(t, "PartnerRepository")
			notifier.AssertNotCalled(t, "NotifyAssignmentAvailable", mock.Anything, mock.Anything)
		})
	}
}

func TestMatchCouriersCommandHandler_Handle_ZeroCandidates(t *testing.T) {
	ctx := t.Context()

	area := testArea(t)
	v := testVendor(t, area.ID())
	testOrder := readyOrder(t, v.ID())

	cmd, err := commands.NewMatchCouriersCommand(testOrder.ID(), commands.DefaultSearchRadiusKm)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	vendorRepo := new(MockVendorRepository)
	areaRepo := new(MockServiceAreaRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.On("ServiceAreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Get", ctx, v.ServiceAreaID()).Return(area, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetAllAvailableInArea", ctx, area.ID()).
			Return([]*courier.DeliveryPartner{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMatchingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchCouriersCommandHandler(factory, services.NewCandidateSelector(), notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result.NotifiedCount)
	assert.Empty(t, result.CandidateIDs)
	notifier.AssertNotCalled(t, "NotifyAssignmentAvailable", mock.Anything, mock.Anything)
}

func TestMatchCouriersCommandHandler_Handle_ShortCircuits(t *testing.T) {
	tests := map[string]func(t *testing.T) *order.Order{
		"assigned order": func(t *testing.T) *order.Order {
			o := readyOrder(t, kernel.NewUUID())
			require.NoError(t, o.AssignCourier(kernel.NewUUID()))
			return o
		},
		"terminal order": func(t *testing.T) *order.Order {
			o := testDeliveryOrder(t, kernel.NewUUID())
			require.NoError(t, o.TransitionTo(order.Cancelled, ""))
			return o
		},
		"pending order": func(t *testing.T) *order.Order {
			return testDeliveryOrder(t, kernel.NewUUID())
		},
		"pickup order": func(t *testing.T) *order.Order {
			o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Pickup, nil)
			require.NoError(t, err)
			return o
		},
	}

	for name, build := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			testOrder := build(t)

			cmd, err := commands.NewMatchCouriersCommand(testOrder.ID(), commands.DefaultSearchRadiusKm)
			require.NoError(t, err)

			orderRepo := new(MockOrderRepository)
			uow := new(MockUoW)
			notifier := new(MockNotifier)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orderRepo).Once(),
				orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockMatchingUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewMatchCouriersCommandHandler(factory, services.NewCandidateSelector(), notifier)
			result, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, commands.MatchResult{}, result)
			uow.AssertNotCalled(t, "VendorRepository")
		})
	}
}

func TestMatchCouriersCommandHandler_Handle_NotificationFailureNotCounted(t *testing.T) {
	ctx := t.Context()

	area := testArea(t)
	v := testVendor(t, area.ID())
	testOrder := readyOrder(t, v.ID())

	near := availablePartner(t, 12.905, 77.60, area.ID())
	far := availablePartner(t, 12.92, 77.60, area.ID())

	cmd, err := commands.NewMatchCouriersCommand(testOrder.ID(), commands.DefaultSearchRadiusKm)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	vendorRepo := new(MockVendorRepository)
	areaRepo := new(MockServiceAreaRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.On("ServiceAreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Get", ctx, v.ServiceAreaID()).Return(area, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetAllAvailableInArea", ctx, area.ID()).
			Return([]*courier.DeliveryPartner{near, far}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("NotifyAssignmentAvailable", ctx, mock.MatchedBy(func(n ports.AssignmentNotification) bool {
		return n.PartnerID.IsEqual(near.ID())
	})).Return(nil).Once()
	notifier.On("NotifyAssignmentAvailable", ctx, mock.MatchedBy(func(n ports.AssignmentNotification) bool {
		return n.PartnerID.IsEqual(far.ID())
	})).Return(errors.New("queue full")).Once()

	factory := new(MockMatchingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchCouriersCommandHandler(factory, services.NewCandidateSelector(), notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.NotifiedCount)
	assert.Len(t, result.CandidateIDs, 2)
}
