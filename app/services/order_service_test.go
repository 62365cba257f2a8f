package services

import (
	"context"
	"testing"

	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]models.Order, error) { return nil, nil }

func (f *fakeOrderRepo) FindByStatus(ctx context.Context, status string) ([]models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*models.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error { return nil }

func TestOrderCreateComputesTotals(t *testing.T) {
	repo := &fakeOrderRepo{orders: map[string]*models.Order{}}
	svc := NewOrderService(repo)

	order, err := svc.Create(context.Background(), OrderInput{
		UserID: "u1",
		Items: []OrderItemInput{
			{ProductID: "p1", ProductName: "Camisa Brasil Home 2024", Size: "M", Quantity: 2, UnitPrice: decimal.NewFromFloat(349.90)},
			{ProductID: "p2", ProductName: "Camisa PSG Home 2024", Size: "G", Quantity: 1, UnitPrice: decimal.NewFromFloat(379.90)},
		},
		ShippingAddress: "Rua A, 12",
		ShippingCity:    "São Paulo",
		ShippingState:   "SP",
		ShippingZipCode: "01000-000",
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "699.8", order.Items[0].Subtotal.String())
	assert.Equal(t, "379.9", order.Items[1].Subtotal.String())
	assert.Equal(t, "1079.7", order.TotalPrice.String())
	assert.Equal(t, models.OrderStatusPending, order.Status)

	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
		assert.NotEmpty(t, item.ID)
	}
}

func TestUpdateFulfillment(t *testing.T) {
	repo := &fakeOrderRepo{orders: map[string]*models.Order{
		"o1": {ID: "o1", Status: models.OrderStatusPending},
	}}
	svc := NewOrderService(repo)

	status := models.OrderStatusShipped
	tracking := "BR123456789"
	order, err := svc.UpdateFulfillment(context.Background(), "o1", &status, &tracking)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.Equal(t, "BR123456789", order.TrackingCode)
}

func TestUpdateFulfillmentUnknownStatus(t *testing.T) {
	repo := &fakeOrderRepo{orders: map[string]*models.Order{
		"o1": {ID: "o1", Status: models.OrderStatusPending},
	}}
	svc := NewOrderService(repo)

	status := "teleported"
	_, err := svc.UpdateFulfillment(context.Background(), "o1", &status, nil)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateFulfillmentNotFound(t *testing.T) {
	repo := &fakeOrderRepo{orders: map[string]*models.Order{}}
	svc := NewOrderService(repo)

	_, err := svc.UpdateFulfillment(context.Background(), "missing", nil, nil)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
