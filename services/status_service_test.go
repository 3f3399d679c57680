package services

import (
	"encoding/json"
	"errors"
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const eventsTopic = "order-status-events-test"

func newStatusService(orderRepo *MockOrderRepository, publisher *MockPublisher, notifier *MockNotifier, strict bool) IStatusService {
	return NewStatusService(orderRepo, NewAllowList([]int64{900}), publisher, notifier, eventsTopic, strict)
}

func TestStatusService_SetStatus_RequiresOperator(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockPublisher := new(MockPublisher)
	mockNotifier := new(MockNotifier)

	svc := newStatusService(mockOrderRepo, mockPublisher, mockNotifier, false)
	order, err := svc.SetStatus(12, models.StatusPaid, 42)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, order)
	mockOrderRepo.AssertNotCalled(t, "UpdateOrder")
	mockPublisher.AssertNotCalled(t, "Publish")
}

func TestStatusService_SetStatus_SkipsPaidDirectlyToPacking(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockPublisher := new(MockPublisher)
	mockNotifier := new(MockNotifier)

	stored := &models.Order{Model: gorm.Model{ID: 12}, UserID: 42, Status: models.StatusWaitPayment}
	mockOrderRepo.On("UpdateOrder", uint(12)).Return(stored, nil)
	mockPublisher.On("Publish", eventsTopic, "12", mock.AnythingOfType("[]uint8")).Return(nil)
	mockNotifier.On("Notify", int64(42), mock.AnythingOfType("string")).Return(nil)

	svc := newStatusService(mockOrderRepo, mockPublisher, mockNotifier, false)
	order, err := svc.SetStatus(12, models.StatusPacking, 900)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPacking, order.Status)

	// The event carries the transition the customer will be told about.
	var event StatusChangedEvent
	payload := mockPublisher.Calls[0].Arguments.Get(2).([]byte)
	assert.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, uint(12), event.OrderID)
	assert.Equal(t, int64(42), event.UserID)
	assert.Equal(t, "WAIT_PAYMENT", event.OldStatus)
	assert.Equal(t, "PACKING", event.NewStatus)
	assert.NotEmpty(t, event.EventID)

	mockPublisher.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestStatusService_SetStatus_TerminalOrderRejectsAnyTarget(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockPublisher := new(MockPublisher)
	mockNotifier := new(MockNotifier)

	stored := &models.Order{Model: gorm.Model{ID: 12}, UserID: 42, Status: models.StatusDone}
	mockOrderRepo.On("UpdateOrder", uint(12)).Return(stored, nil)

	svc := newStatusService(mockOrderRepo, mockPublisher, mockNotifier, false)
	order, err := svc.SetStatus(12, models.StatusCanceled, 900)

	assert.ErrorIs(t, err, ErrOrderTerminal)
	assert.Nil(t, order)
	assert.Equal(t, models.StatusDone, stored.Status)
	mockPublisher.AssertNotCalled(t, "Publish")
	mockNotifier.AssertNotCalled(t, "Notify")
}

func TestStatusService_SetStatus_OrderNotFound(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockPublisher := new(MockPublisher)
	mockNotifier := new(MockNotifier)

	mockOrderRepo.On("UpdateOrder", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := newStatusService(mockOrderRepo, mockPublisher, mockNotifier, false)
	order, err := svc.SetStatus(99, models.StatusPaid, 900)

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, order)
}

func TestStatusService_SetStatus_PermissiveAllowsBackwardMove(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockPublisher := new(MockPublisher)
	mockNotifier := new(MockNotifier)

	stored := &models.Order{Model: gorm.Model{ID: 12}, UserID: 42, Status: models.StatusShipped}
	mockOrderRepo.On("UpdateOrder", uint(12)).Return(stored, nil)
	mockPublisher.On("Publish", eventsTopic, "12", mock.AnythingOfType("[]uint8")).Return(nil)
	mockNotifier.On("Notify", int64(42), mock.AnythingOfType("string")).Return(nil)

	svc := newStatusService(mockOrderRepo, mockPublisher, mockNotifier, false)
	order, err := svc.SetStatus(12, models.StatusWaitPayment, 900)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusWaitPayment, order.Status)
}

func TestStatusService_SetStatus_StrictRejectsBackwardMove(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockPublisher := new(MockPublisher)
	mockNotifier := new(MockNotifier)

	stored := &models.Order{Model: gorm.Model{ID: 12}, UserID: 42, Status: models.StatusShipped}
	mockOrderRepo.On("UpdateOrder", uint(12)).Return(stored, nil)

	svc := newStatusService(mockOrderRepo, mockPublisher, mockNotifier, true)
	order, err := svc.SetStatus(12, models.StatusWaitPayment, 900)

	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	assert.Nil(t, order)
	assert.Equal(t, models.StatusShipped, stored.Status)
	mockPublisher.AssertNotCalled(t, "Publish")
}

func TestStatusService_SetStatus_StrictAllowsForwardStepAndCancel(t *testing.T) {
	mockPublisher := new(MockPublisher)
	mockNotifier := new(MockNotifier)
	mockPublisher.On("Publish", eventsTopic, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil)
	mockNotifier.On("Notify", mock.AnythingOfType("int64"), mock.AnythingOfType("string")).Return(nil)

	mockOrderRepo := new(MockOrderRepository)
	stored := &models.Order{Model: gorm.Model{ID: 12}, UserID: 42, Status: models.StatusPaid}
	mockOrderRepo.On("UpdateOrder", uint(12)).Return(stored, nil)

	svc := newStatusService(mockOrderRepo, mockPublisher, mockNotifier, true)
	order, err := svc.SetStatus(12, models.StatusPacking, 900)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPacking, order.Status)

	// CANCELED stays reachable from any non-terminal status in strict mode.
	mockOrderRepo = new(MockOrderRepository)
	stored = &models.Order{Model: gorm.Model{ID: 13}, UserID: 42, Status: models.StatusPacking}
	mockOrderRepo.On("UpdateOrder", uint(13)).Return(stored, nil)

	svc = newStatusService(mockOrderRepo, mockPublisher, mockNotifier, true)
	order, err = svc.SetStatus(13, models.StatusCanceled, 900)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, order.Status)
}

func TestStatusService_SetStatus_PublishFailureKeepsTransition(t *testing.T) {
	mockOrderRepo := new(MockOrderRepository)
	mockPublisher := new(MockPublisher)
	mockNotifier := new(MockNotifier)

	stored := &models.Order{Model: gorm.Model{ID: 12}, UserID: 42, Status: models.StatusWaitPayment}
	mockOrderRepo.On("UpdateOrder", uint(12)).Return(stored, nil)
	mockPublisher.On("Publish", eventsTopic, "12", mock.AnythingOfType("[]uint8")).
		Return(errors.New("broker unreachable"))
	mockNotifier.On("Notify", int64(42), mock.AnythingOfType("string")).
		Return(errors.New("broker unreachable"))

	svc := newStatusService(mockOrderRepo, mockPublisher, mockNotifier, false)
	order, err := svc.SetStatus(12, models.StatusPaid, 900)

	// The committed status change is the source of truth; delivery is
	// best-effort.
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPaid, order.Status)
}
