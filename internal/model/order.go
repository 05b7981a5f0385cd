package model

import (
	"eurder/internal/money"

	"github.com/google/uuid"
)

// ItemGroup is an (item reference, quantity) pair as received on the wire,
// before the item's price has been snapshotted.
type ItemGroup struct {
	ItemID        uuid.UUID
	OrderedAmount int
}

// NewItemGroup validates an item group request.
func NewItemGroup(itemID uuid.UUID, orderedAmount int) (ItemGroup, error) {
	if orderedAmount <= 0 {
		return ItemGroup{}, ErrInvalidQuantity
	}
	return ItemGroup{ItemID: itemID, OrderedAmount: orderedAmount}, nil
}

// OrderItem is a line of an order. ItemPrice is the item's unit price as it
// was at order-creation time; later catalogue changes do not affect it.
type OrderItem struct {
	ItemID        uuid.UUID `db:"item_id"`
	OrderedAmount int       `db:"ordered_amount"`
	ItemPrice     money.Price
}

// NewOrderItem creates an order line with a snapshotted unit price.
func NewOrderItem(itemID uuid.UUID, orderedAmount int, itemPrice money.Price) (OrderItem, error) {
	if orderedAmount <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	return OrderItem{
		ItemID:        itemID,
		OrderedAmount: orderedAmount,
		ItemPrice:     itemPrice,
	}, nil
}

// TotalPrice is the line total: unit price times quantity.
func (oi OrderItem) TotalPrice() money.Price {
	return oi.ItemPrice.MulInt(int64(oi.OrderedAmount))
}

// Order represents a customer order. The order exclusively owns its lines;
// the sequence is fixed at construction and exposed only as a copy.
type Order struct {
	Entity
	CustomerID uuid.UUID `db:"customer_id"`
	orderItems []OrderItem
}

// NewOrder creates an order record, generating an identifier when id is
// uuid.Nil. The item slice is copied.
func NewOrder(id, customerID uuid.UUID, orderItems []OrderItem) Order {
	items := make([]OrderItem, len(orderItems))
	copy(items, orderItems)
	return Order{
		Entity:     newEntity(id),
		CustomerID: customerID,
		orderItems: items,
	}
}

// OrderItems returns the order lines in insertion order. Callers receive a
// copy; mutating it does not affect the order.
func (o Order) OrderItems() []OrderItem {
	items := make([]OrderItem, len(o.orderItems))
	copy(items, o.orderItems)
	return items
}

// TotalPrice sums the line totals. An empty order totals zero.
func (o Order) TotalPrice() money.Price {
	total := money.Zero
	for _, item := range o.orderItems {
		total = total.Add(item.TotalPrice())
	}
	return total
}
