package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/commands"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/drug"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/ports"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransitionOrderRepository struct{ mock.Mock }

func (m *MockTransitionOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockTransitionOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockTransitionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockTransitionOrderRepository) NextOrderNumber(_ context.Context) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type MockTransitionDrugRepository struct{ mock.Mock }

func (m *MockTransitionDrugRepository) Add(_ context.Context, _ *drug.Drug) error {
	return errors.New("not implemented in mock")
}
func (m *MockTransitionDrugRepository) Update(ctx context.Context, d *drug.Drug) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockTransitionDrugRepository) Get(_ context.Context, _ kernel.UUID) (*drug.Drug, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockTransitionDrugRepository) IncrementQuantity(
	ctx context.Context, id kernel.UUID, delta int,
) (*drug.Drug, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drug.Drug), args.Error(1)
}
func (m *MockTransitionDrugRepository) GetExpiredBefore(_ context.Context, _ time.Time) ([]*drug.Drug, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTransitionUoW struct{ mock.Mock }

func (m *MockTransitionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransitionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransitionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransitionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockTransitionUoW) DrugRepository() ports.DrugRepository {
	args := m.Called()
	return args.Get(0).(ports.DrugRepository)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.OrderInventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderInventoryUoW)
}

func restorePendingOrder(t *testing.T, items []order.Item) *order.Order {
	t.Helper()

	orderNumber, err := kernel.OrderNumberFromSequence(12)
	require.NoError(t, err)

	entry, err := order.NewTimelineEntry(
		order.Pending, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), "Order created")
	require.NoError(t, err)

	total := 0.0
	for _, item := range items {
		total += item.TotalPrice()
	}

	restored, err := order.RestoreOrder(
		kernel.NewUUID(), orderNumber, kernel.NewUUID(), nil,
		items, total, order.Pending, order.Medium,
		[]order.TimelineEntry{entry}, nil, 1)
	require.NoError(t, err)
	return restored
}

func restoreShippedOrder(t *testing.T, items []order.Item) *order.Order {
	t.Helper()

	restored := restorePendingOrder(t, items)
	_, err := restored.ChangeStatus(order.Shipped, "", time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return restored
}

func restoreTestDrug(t *testing.T, id kernel.UUID, quantity int) *drug.Drug {
	t.Helper()

	restored, err := drug.RestoreDrug(
		id, "Amoxil", "Amoxicillin", "AMX-500", "Antibiotic", "GSK", "B-100",
		nil, quantity, 4.2, 10, drug.InStock)
	require.NoError(t, err)
	return restored
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	item, err := order.NewItem(kernel.NewUUID(), 3, 10)
	require.NoError(t, err)
	aggregate := restorePendingOrder(t, []order.Item{item})

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed, "")
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Confirmed, aggregate.Status())
	require.Len(t, aggregate.Timeline(), 2)
	require.Equal(t, "Order status changed to Confirmed", aggregate.Timeline()[1].Note())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveredAppliesStockAdjustments(t *testing.T) {
	ctx := t.Context()

	firstDrugID := kernel.NewUUID()
	secondDrugID := kernel.NewUUID()

	firstItem, err := order.NewItem(firstDrugID, 3, 10)
	require.NoError(t, err)
	secondItem, err := order.NewItem(secondDrugID, 2, 5)
	require.NoError(t, err)

	aggregate := restoreShippedOrder(t, []order.Item{firstItem, secondItem})

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Delivered, "Received at loading dock")
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	drugRepo := new(MockTransitionDrugRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("DrugRepository").Return(drugRepo).Once(),
		drugRepo.On("IncrementQuantity", ctx, firstDrugID, 3).
			Return(restoreTestDrug(t, firstDrugID, 53), nil).Once(),
		drugRepo.On("IncrementQuantity", ctx, secondDrugID, 2).
			Return(restoreTestDrug(t, secondDrugID, 22), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Delivered, aggregate.Status())
	require.NotNil(t, aggregate.ActualDelivery())
	require.Equal(t, "Received at loading dock", aggregate.Timeline()[len(aggregate.Timeline())-1].Note())
	orderRepo.AssertExpectations(t)
	drugRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RefreshesDrugStatusAfterIncrement(t *testing.T) {
	ctx := t.Context()

	drugID := kernel.NewUUID()
	item, err := order.NewItem(drugID, 4, 10)
	require.NoError(t, err)
	aggregate := restoreShippedOrder(t, []order.Item{item})

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Delivered, "")
	require.NoError(t, err)

	// stored status says OutOfStock, but after the increment the quantity is
	// above the reorder level; the handler must persist the refreshed status
	staleDrug, err := drug.RestoreDrug(
		drugID, "Amoxil", "Amoxicillin", "AMX-500", "Antibiotic", "GSK", "B-100",
		nil, 14, 4.2, 10, drug.OutOfStock)
	require.NoError(t, err)

	orderRepo := new(MockTransitionOrderRepository)
	drugRepo := new(MockTransitionDrugRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("DrugRepository").Return(drugRepo).Once(),
		drugRepo.On("IncrementQuantity", ctx, drugID, 4).Return(staleDrug, nil).Once(),
		drugRepo.On("Update", ctx, staleDrug).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, drug.InStock, staleDrug.Status())
	drugRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RetriesOnVersionConflict(t *testing.T) {
	ctx := t.Context()

	item, err := order.NewItem(kernel.NewUUID(), 3, 10)
	require.NoError(t, err)

	first := restorePendingOrder(t, []order.Item{item})
	second, err := order.RestoreOrder(
		first.ID(), first.OrderNumber(), first.VendorID(), nil,
		first.Items(), first.TotalAmount(), order.Pending, order.Medium,
		first.Timeline(), nil, 2)
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(first.ID(), order.Confirmed, "")
	require.NoError(t, err)

	conflict := errs.NewVersionIsInvalidErrorWithCause("order")

	firstRepo := new(MockTransitionOrderRepository)
	firstUoW := new(MockTransitionUoW)
	mock.InOrder(
		firstUoW.On("Begin", ctx).Return(nil).Once(),
		firstUoW.On("OrderRepository").Return(firstRepo).Once(),
		firstRepo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		firstRepo.On("Update", ctx, first).Return(conflict).Once(),
		firstUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	secondRepo := new(MockTransitionOrderRepository)
	secondUoW := new(MockTransitionUoW)
	mock.InOrder(
		secondUoW.On("Begin", ctx).Return(nil).Once(),
		secondUoW.On("OrderRepository").Return(secondRepo).Once(),
		secondRepo.On("Get", ctx, first.ID()).Return(second, nil).Once(),
		secondRepo.On("Update", ctx, second).Return(nil).Once(),
		secondUoW.On("Commit", ctx).Return(nil).Once(),
		secondUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Confirmed, second.Status())
	firstRepo.AssertExpectations(t)
	secondRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_GivesUpAfterRetryBudget(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Confirmed, "")
	require.NoError(t, err)

	conflict := errs.NewVersionIsInvalidErrorWithCause("order")
	factory := new(MockTransitionUoWFactory)

	for range 3 {
		item, itemErr := order.NewItem(kernel.NewUUID(), 1, 1)
		require.NoError(t, itemErr)
		aggregate := restorePendingOrder(t, []order.Item{item})

		repo := new(MockTransitionOrderRepository)
		uow := new(MockTransitionUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, cmd.OrderID()).Return(aggregate, nil).Once(),
			repo.On("Update", ctx, aggregate).Return(conflict).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory.On("Create").Return(uow).Once()
	}

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalOrderIsNotRetried(t *testing.T) {
	ctx := t.Context()

	item, err := order.NewItem(kernel.NewUUID(), 3, 10)
	require.NoError(t, err)
	aggregate := restorePendingOrder(t, []order.Item{item})
	_, err = aggregate.ChangeStatus(order.Cancelled, "", time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Processing, "")
	require.NoError(t, err)

	repo := new(MockTransitionOrderRepository)
	uow := new(MockTransitionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly
	factory := new(MockTransitionUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
