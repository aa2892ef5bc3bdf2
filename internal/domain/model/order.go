package model

import (
	"strings"

	apperrors "github.com/target/storefront-admin/internal/errors"
)

// OrderStatus is the lifecycle state the store API filters orders by.
type OrderStatus string

const (
	OrderOrdered    OrderStatus = "ordered"
	OrderDelivering OrderStatus = "delivering"
	OrderCompleted  OrderStatus = "completed"
	OrderRejected   OrderStatus = "rejected"
)

// OrderStatuses lists the statuses in tab order.
var OrderStatuses = []OrderStatus{OrderOrdered, OrderDelivering, OrderCompleted, OrderRejected}

// ParseOrderStatus normalizes value and reports whether it is a known status.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range OrderStatuses {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// Order is an order row. The store API leaves most fields nullable.
type Order struct {
	OrderID         *string  `json:"orderId"`
	OrderDate       *string  `json:"orderDate"`
	OrderPlace      *string  `json:"orderPlace"`
	OrderStartPoint *string  `json:"orderStartPoint"`
	OrderEndPoint   *string  `json:"orderEndPoint"`
	TotalAmount     *float64 `json:"totalAmount"`
	TotalQTY        *int     `json:"totalQTY"`
	TotalProfit     *float64 `json:"totalProfit"`
	TotalCost       *float64 `json:"totalCost"`
	Status          *string  `json:"status"`
	UserName        *string  `json:"userName"`
	DeliveryName    *string  `json:"deliveryName"`
	PaymentType     *string  `json:"paymentType"`
	PaymentAmount   *float64 `json:"paymentAmount"`
	DeliFee         *float64 `json:"deliFee"`
	PaymentStatus   *string  `json:"paymentStatus"`
}

// ID returns the order id or "".
func (o Order) ID() string {
	if o.OrderID == nil {
		return ""
	}
	return *o.OrderID
}

// Voucher is an order with its line items and discounts.
type Voucher struct {
	OrderID         string        `json:"orderId"`
	TotalAmount     float64       `json:"totalAmount"`
	DiscountAmount  float64       `json:"discountAmount"`
	DiscountPercent float64       `json:"discountPercent"`
	FinalAmount     float64       `json:"finalAmount"`
	Description     string        `json:"description"`
	OrderDetails    []OrderDetail `json:"orderDetails"`
}

// OrderDetail is one voucher line.
type OrderDetail struct {
	OrderDetailID  string  `json:"orderDetailId"`
	ProductName    string  `json:"productName"`
	Qty            int     `json:"qty"`
	Price          float64 `json:"price"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
}

// DeliveryAction is what a delivery user does with an order.
type DeliveryAction string

const (
	DeliveryAccept   DeliveryAction = "Accept"
	DeliveryComplete DeliveryAction = "Complete"
	DeliveryReject   DeliveryAction = "Reject"
)

// ParseDeliveryAction accepts the action case-insensitively.
func ParseDeliveryAction(value string) (DeliveryAction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "accept":
		return DeliveryAccept, nil
	case "complete":
		return DeliveryComplete, nil
	case "reject":
		return DeliveryReject, nil
	default:
		return "", apperrors.ValidationField("status", "Action must be Accept, Complete or Reject")
	}
}

// DeliveryAccess is the body of a delivery action request.
type DeliveryAccess struct {
	OrderID string         `json:"orderId"`
	Status  DeliveryAction `json:"status"`
}
