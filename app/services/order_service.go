package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/repositories"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orderRepo repositories.OrderRepositoryImpl
}

func NewOrderService(orderRepo repositories.OrderRepositoryImpl) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

type OrderItemInput struct {
	ProductID    string
	ProductName  string
	ProductTeam  string
	ProductImage string
	Size         string
	Quantity     int
	UnitPrice    decimal.Decimal
}

type OrderInput struct {
	UserID          string
	Items           []OrderItemInput
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZipCode string
}

// Create computes each item subtotal and the order total from the
// submitted line items and persists the order as pending.
func (s *OrderService) Create(ctx context.Context, in OrderInput) (*models.Order, error) {
	orderID := uuid.New().String()
	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		subtotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(subtotal)
		items = append(items, models.OrderItem{
			ID:           uuid.New().String(),
			OrderID:      orderID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductTeam:  it.ProductTeam,
			ProductImage: it.ProductImage,
			Size:         it.Size,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Subtotal:     subtotal,
		})
	}

	order := &models.Order{
		ID:              orderID,
		UserID:          in.UserID,
		Items:           items,
		TotalPrice:      total,
		ShippingAddress: in.ShippingAddress,
		ShippingCity:    in.ShippingCity,
		ShippingState:   in.ShippingState,
		ShippingZipCode: in.ShippingZipCode,
		Status:          models.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// UpdateFulfillment mutates the only mutable order fields: status and
// tracking code.
func (s *OrderService) UpdateFulfillment(ctx context.Context, id string, status, trackingCode *string) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if order == nil {
		return nil, apperr.NotFound("order %s not found", id)
	}

	if status != nil {
		if !models.ValidOrderStatus(*status) {
			return nil, apperr.Validation("unknown order status %q", *status)
		}
		order.Status = *status
	}
	if trackingCode != nil {
		order.TrackingCode = *trackingCode
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}
