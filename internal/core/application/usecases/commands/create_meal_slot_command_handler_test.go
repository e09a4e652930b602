package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mealslot"
	"fulfillment/internal/pkg/errs"
)

func TestCreateMealSlotCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	slotVendor := testVendor(t, kernel.NewUUID())

	cmd, err := commands.NewCreateMealSlotCommand(
		kernel.NewUUID(), slotVendor.ID(), "12:00", "14:00", "10:30", 30)
	require.NoError(t, err)

	slotRepo := new(MockMealSlotRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("Get", ctx, slotVendor.ID()).Return(slotVendor, nil).Once(),
		uow.On("MealSlotRepository").Return(slotRepo).Once(),
		slotRepo.On("Add", ctx, mock.AnythingOfType("*mealslot.MealSlot")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSlotUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMealSlotCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := slotRepo.Calls[0].Arguments[1].(*mealslot.MealSlot)
	assert.True(t, added.VendorID().IsEqual(slotVendor.ID()))
	assert.Len(t, added.DeliveryWindows(), 4)
}

func TestCreateMealSlotCommandHandler_Handle_VendorNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateMealSlotCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12:00", "14:00", "10:30", 30)
	require.NoError(t, err)

	vendorRepo := new(MockVendorRepository)
	vendorRepo.On("Get", ctx, mock.Anything).Return(nil, errs.ErrObjectNotFound).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VendorRepository").Return(vendorRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSlotUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMealSlotCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrVendorNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateMealSlotCommandHandler_Handle_InvalidTimes(t *testing.T) {
	ctx := t.Context()

	// Cutoff after start: the aggregate rejects before any repository work.
	cmd, err := commands.NewCreateMealSlotCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12:00", "14:00", "12:30", 30)
	require.NoError(t, err)

	factory := new(MockSlotUoWFactory)
	handler := commands.NewCreateMealSlotCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, mealslot.ErrCutoffNotBeforeStart)
	factory.AssertNotCalled(t, "Create")
}
