package dto

import (
	"time"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// OrderItemRequest is one cart line. Clients send the product reference as
// either "_id" or "id"; a missing quantity means one unit.
type OrderItemRequest struct {
	LegacyID *int64  `json:"_id"`
	ID       *int64  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity *int    `json:"quantity"`
}

// ProductID resolves the product reference, preferring the legacy field.
func (r OrderItemRequest) ProductID() int64 {
	if r.LegacyID != nil {
		return *r.LegacyID
	}
	if r.ID != nil {
		return *r.ID
	}
	return 0
}

// ToModel converts the line to its domain form.
func (r OrderItemRequest) ToModel() model.OrderItem {
	quantity := 1
	if r.Quantity != nil {
		quantity = *r.Quantity
	}
	return model.OrderItem{
		ProductID: r.ProductID(),
		Name:      r.Name,
		Price:     r.Price,
		Quantity:  quantity,
	}
}

// CustomerRequest is the contact block some clients attach to checkout. It is
// accepted but the account's stored contact fields feed the notification.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	Products []OrderItemRequest `json:"products"`
	OTP      string             `json:"otp"`
	Total    float64            `json:"total"`
	Customer *CustomerRequest   `json:"customer"`
}

// OrderItemResponse is one persisted order line.
type OrderItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse is the persisted order representation.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Username  string              `json:"username"`
	Products  []OrderItemResponse `json:"products"`
	OrderDate time.Time           `json:"orderDate"`
}

// ToOrderResponse converts a domain order to its wire form.
func ToOrderResponse(o model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return OrderResponse{
		ID:        o.ID,
		Username:  o.Username,
		Products:  items,
		OrderDate: o.OrderDate,
	}
}

// PlaceOrderResponse reports a successful checkout.
type PlaceOrderResponse struct {
	Message         string            `json:"message"`
	Order           OrderResponse     `json:"order"`
	UpdatedProducts []ProductResponse `json:"updatedProducts"`
}

// DeleteOrderResponse reports a successful deletion with the removed record.
type DeleteOrderResponse struct {
	Message string        `json:"message"`
	Result  OrderResponse `json:"result"`
}
