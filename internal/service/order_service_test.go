package service

import (
	"context"
	"regexp"
	"testing"

	"delivery-backend/internal/model"
	"delivery-backend/internal/websocket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeOrderRepo holds a single order in memory and a name-keyed status table
type fakeOrderRepo struct {
	order     *model.Order
	statusIDs map[string]uuid.UUID
	names     map[uuid.UUID]string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		statusIDs: make(map[string]uuid.UUID),
		names:     make(map[uuid.UUID]string),
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *model.Order) error {
	f.order = order
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	if f.order == nil || f.order.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	o := *f.order
	o.Status = &model.Status{ID: o.StatusID, Name: f.names[o.StatusID]}
	return &o, nil
}

func (f *fakeOrderRepo) FindByTTN(_ context.Context, _ string) (*model.Order, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) FindMany(_ context.Context, _, _ int) ([]model.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) FindByCustomer(_ context.Context, _ uuid.UUID) ([]model.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindUnassigned(_ context.Context) ([]model.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, statusID uuid.UUID) error {
	if f.order == nil || f.order.ID.String() != id {
		return gorm.ErrRecordNotFound
	}
	f.order.StatusID = statusID
	return nil
}

func (f *fakeOrderRepo) EnsureStatus(_ context.Context, name, _ string) (uuid.UUID, error) {
	if id, ok := f.statusIDs[name]; ok {
		return id, nil
	}
	id := uuid.New()
	f.statusIDs[name] = id
	f.names[id] = name
	return id, nil
}

func (f *fakeOrderRepo) UpsertDelivery(_ context.Context, _, _, _ uuid.UUID) error {
	return nil
}

type fakeLogService struct {
	actions []string
}

func (f *fakeLogService) Record(_ context.Context, _ *uuid.UUID, action, _, _ string, _ interface{}, _, _ string) {
	f.actions = append(f.actions, action)
}

func (f *fakeLogService) List(_ context.Context, _ int) ([]ActivityLogResponse, error) {
	return nil, nil
}

type fakeNotifier struct {
	titles []string
}

func (f *fakeNotifier) Notify(_ context.Context, _ uuid.UUID, title, _, _, _ string) {
	f.titles = append(f.titles, title)
}

func (f *fakeNotifier) ListForUser(_ context.Context, _ uuid.UUID, _ bool) ([]NotificationResponse, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(_ context.Context, _ string, _ uuid.UUID) error {
	return nil
}

func TestNewTrackingNumberFormat(t *testing.T) {
	ttn := newTrackingNumber()
	assert.Regexp(t, regexp.MustCompile(`^TTN-\d{13}-[0-9a-f]{8}$`), ttn)
}

func TestNewTrackingNumbersAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ttn := newTrackingNumber()
		assert.False(t, seen[ttn], "duplicate tracking number %s", ttn)
		seen[ttn] = true
	}
}

func TestSerializeItems(t *testing.T) {
	raw, err := serializeItems([]OrderItemRequest{
		{Name: "Box", Quantity: 2, Price: 10.5},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Box","quantity":2,"price":10.5}]`, raw)
}

func TestUpdateStatusMapsFrontVocabulary(t *testing.T) {
	ctx := context.Background()

	repo := newFakeOrderRepo()
	pendingID, err := repo.EnsureStatus(ctx, model.OrderStatusPending, model.StatusTypeOrder)
	require.NoError(t, err)

	orderID := uuid.New()
	repo.order = &model.Order{
		ID:              orderID,
		OrderNumber:     "TTN-1700000000000-abcd1234",
		CustomerID:      uuid.New(),
		StatusID:        pendingID,
		DeliveryAddress: "Khreshchatyk St, 1",
		Customer:        &model.Customer{UserID: uuid.New()},
	}

	hub := websocket.NewHub()
	go hub.Run()

	logs := &fakeLogService{}
	notifier := &fakeNotifier{}
	svc := NewOrderService(repo, nil, nil, nil, logs, notifier, hub)

	resp, err := svc.UpdateStatus(ctx, orderID.String(), UpdateOrderStatusRequest{Status: "shipped"})
	require.NoError(t, err)

	assert.Equal(t, "shipped", resp.Status)
	assert.Equal(t, repo.statusIDs[model.OrderStatusInTransit], repo.order.StatusID)
	assert.NotEmpty(t, notifier.titles)
	assert.Contains(t, logs.actions, model.ActionOrderStatusUpdated)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	hub := websocket.NewHub()
	go hub.Run()

	svc := NewOrderService(newFakeOrderRepo(), nil, nil, nil, &fakeLogService{}, &fakeNotifier{}, hub)

	_, err := svc.UpdateStatus(context.Background(), uuid.NewString(), UpdateOrderStatusRequest{Status: "delivered"})
	assert.Error(t, err)
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+380501234567", true},
		{"380501234567", true},
		{"0501234567", true},
		{"12345", false},
		{"+38050123456789012", false},
		{"phone", false},
		{"+38050-123-45-67", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, phoneRegex.MatchString(tt.phone))
		})
	}
}
