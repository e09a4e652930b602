package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mealslot"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/servicearea"
	"fulfillment/internal/core/domain/model/vendor"
	"fulfillment/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AssignCourier(ctx context.Context, orderID kernel.UUID, courierID kernel.UUID) error {
	args := m.Called(ctx, orderID, courierID)
	return args.Error(0)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *courier.DeliveryPartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *courier.DeliveryPartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*courier.DeliveryPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.DeliveryPartner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllAvailableInArea(ctx context.Context, areaID kernel.UUID) ([]*courier.DeliveryPartner, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.DeliveryPartner), args.Error(1)
}

type MockServiceAreaRepository struct{ mock.Mock }

func (m *MockServiceAreaRepository) Add(ctx context.Context, a *servicearea.ServiceArea) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockServiceAreaRepository) Update(ctx context.Context, a *servicearea.ServiceArea) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockServiceAreaRepository) Get(ctx context.Context, id kernel.UUID) (*servicearea.ServiceArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicearea.ServiceArea), args.Error(1)
}

func (m *MockServiceAreaRepository) ActiveAreas(ctx context.Context) ([]*servicearea.ServiceArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*servicearea.ServiceArea), args.Error(1)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

type MockMealSlotRepository struct{ mock.Mock }

func (m *MockMealSlotRepository) Add(ctx context.Context, s *mealslot.MealSlot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockMealSlotRepository) Update(ctx context.Context, s *mealslot.MealSlot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockMealSlotRepository) Get(ctx context.Context, id kernel.UUID) (*mealslot.MealSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealslot.MealSlot), args.Error(1)
}

func (m *MockMealSlotRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*mealslot.MealSlot, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mealslot.MealSlot), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyAssignmentAvailable(ctx context.Context, n ports.AssignmentNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotifier) NotifyAssignmentTaken(ctx context.Context, orderID kernel.UUID, partnerID kernel.UUID) error {
	args := m.Called(ctx, orderID, partnerID)
	return args.Error(0)
}

func (m *MockNotifier) NotifiedPartners(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

// MockUoW satisfies every unit of work composite the handlers use, so each
// test wires only the repositories its command touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) ServiceAreaRepository() ports.ServiceAreaRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceAreaRepository)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) MealSlotRepository() ports.MealSlotRepository {
	args := m.Called()
	return args.Get(0).(ports.MealSlotRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockAcceptOrderUoWFactory struct{ mock.Mock }

func (m *MockAcceptOrderUoWFactory) Create() commands.AcceptOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.AcceptOrderUoW)
}

type MockMatchingUoWFactory struct{ mock.Mock }

func (m *MockMatchingUoWFactory) Create() commands.MatchingUoW {
	args := m.Called()
	return args.Get(0).(commands.MatchingUoW)
}

type MockAreaUoWFactory struct{ mock.Mock }

func (m *MockAreaUoWFactory) Create() commands.AreaUoW {
	args := m.Called()
	return args.Get(0).(commands.AreaUoW)
}

type MockSlotUoWFactory struct{ mock.Mock }

func (m *MockSlotUoWFactory) Create() commands.SlotUoW {
	args := m.Called()
	return args.Get(0).(commands.SlotUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}
