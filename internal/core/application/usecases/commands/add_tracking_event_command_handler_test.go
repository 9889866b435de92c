package commands_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddTrackingEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedShipment(t, shipment.ReadyToBook)
	ts := time.Now().Add(-10 * time.Minute)
	cmd, _ := commands.NewAddTrackingEventCommand(aggregate.ID(), &ts, "Miami, FL", "departed origin")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddTrackingEventCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	events := aggregate.EventsInInsertionOrder()
	last := events[len(events)-1]
	assert.Equal(t, "departed origin", last.Details())
	assert.Equal(t, "Miami, FL", last.Location())
	assert.Equal(t, ts, last.Timestamp())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddTrackingEventCommandHandler_Handle_DefaultsTimestampToNow(t *testing.T) {
	ctx := t.Context()
	aggregate := storedShipment(t, shipment.ReadyToBook)
	cmd, _ := commands.NewAddTrackingEventCommand(aggregate.ID(), nil, "", "customs inspection started")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	before := time.Now().UTC()
	h := commands.NewAddTrackingEventCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	events := aggregate.EventsInInsertionOrder()
	last := events[len(events)-1]
	assert.False(t, last.Timestamp().Before(before))
}

func TestAddTrackingEventCommandHandler_Handle_TerminalShipmentStillAccepts(t *testing.T) {
	ctx := t.Context()
	aggregate := storedShipment(t, shipment.Cancelled)
	cmd, _ := commands.NewAddTrackingEventCommand(aggregate.ID(), nil, "", "refund issued")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddTrackingEventCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}

func TestAddTrackingEventCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddTrackingEventCommand(id, nil, "", "note")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	notFound := errs.NewObjectNotFoundError("shipmentID", id)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddTrackingEventCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddTrackingEventCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddTrackingEventCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewAddTrackingEventCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
