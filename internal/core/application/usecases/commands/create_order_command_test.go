package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

func TestNewCreateOrderCommand_Valid(t *testing.T) {
	addr := point(t, 12.91, 77.61)
	slotID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery, &addr, "12 MG Road", &slotID, "12:30", "13:00")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.Delivery, cmd.Method())
	assert.Equal(t, "12 MG Road", cmd.AddressText())
	assert.Equal(t, "12:30", cmd.WindowStart())
	assert.Equal(t, "13:00", cmd.WindowEnd())
}

func TestNewCreateOrderCommand_PickupWithoutAddress(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Pickup, nil, "", nil, "", "")

	require.NoError(t, err)
	assert.Nil(t, cmd.AddressPoint())
	assert.Nil(t, cmd.MealSlotID())
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	addr := point(t, 12.91, 77.61)

	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), order.Delivery, &addr, "12 MG Road", nil, "", "")
	require.Error(t, err)

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.UUID{}, order.Delivery, &addr, "12 MG Road", nil, "", "")
	require.Error(t, err)
}

func TestNewCreateOrderCommand_IncompleteAddress(t *testing.T) {
	addr := point(t, 12.91, 77.61)

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery, &addr, "", nil, "", "")
	assert.ErrorIs(t, err, commands.ErrAddressIsIncomplete)

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery, nil, "12 MG Road", nil, "", "")
	assert.ErrorIs(t, err, commands.ErrAddressIsIncomplete)
}

func TestNewCreateOrderCommand_WindowWithoutSlot(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Pickup, nil, "", nil, "12:30", "13:00")

	assert.ErrorIs(t, err, commands.ErrWindowRequiresMealSlot)
}

func TestNewCreateOrderCommand_IncompleteWindow(t *testing.T) {
	slotID := kernel.NewUUID()

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Pickup, nil, "", &slotID, "12:30", "")

	assert.ErrorIs(t, err, commands.ErrWindowIsIncomplete)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
