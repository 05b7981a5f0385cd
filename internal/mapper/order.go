package mapper

import (
	"eurder/internal/model"
	"eurder/internal/money"

	"github.com/google/uuid"
)

// OrderCreationToDomain parses an order creation request into the customer
// reference and requested item groups. Prices are not resolved here; the
// service snapshots them from the catalogue.
func OrderCreationToDomain(dto OrderCreationDTO) (uuid.UUID, []model.ItemGroup, error) {
	customerID, err := uuid.Parse(dto.CustomerID)
	if err != nil {
		return uuid.Nil, nil, model.ErrMalformedIdentifier
	}

	groups := make([]model.ItemGroup, len(dto.ItemGroups))
	for i, g := range dto.ItemGroups {
		group, err := ItemGroupToDomain(g)
		if err != nil {
			return uuid.Nil, nil, err
		}
		groups[i] = group
	}

	return customerID, groups, nil
}

// ItemGroupToDomain parses a single requested item group.
func ItemGroupToDomain(dto ItemGroupDTO) (model.ItemGroup, error) {
	itemID, err := uuid.Parse(dto.ItemID)
	if err != nil {
		return model.ItemGroup{}, model.ErrMalformedIdentifier
	}
	return model.NewItemGroup(itemID, dto.OrderedAmount)
}

// OrderToDomain reconstructs a domain order from its read view. The item
// prices in the DTO are the snapshots taken at creation time.
func OrderToDomain(dto OrderDTO) (model.Order, error) {
	id, err := parseOptionalID(dto.ID)
	if err != nil {
		return model.Order{}, err
	}
	customerID, err := uuid.Parse(dto.CustomerID)
	if err != nil {
		return model.Order{}, model.ErrMalformedIdentifier
	}

	items := make([]model.OrderItem, len(dto.ItemGroups))
	for i, g := range dto.ItemGroups {
		itemID, err := uuid.Parse(g.ItemID)
		if err != nil {
			return model.Order{}, model.ErrMalformedIdentifier
		}
		price, err := money.FromFloat(g.ItemPrice)
		if err != nil {
			return model.Order{}, model.ErrInvalidAmount
		}
		item, err := model.NewOrderItem(itemID, g.OrderedAmount, price)
		if err != nil {
			return model.Order{}, err
		}
		items[i] = item
	}

	return model.NewOrder(id, customerID, items), nil
}

// OrderToDTO projects a domain order to its read view.
func OrderToDTO(o model.Order) OrderDTO {
	items := o.OrderItems()
	groups := make([]OrderItemDTO, len(items))
	for i, item := range items {
		groups[i] = OrderItemDTO{
			ItemID:        item.ItemID.String(),
			OrderedAmount: item.OrderedAmount,
			ItemPrice:     item.ItemPrice.Float64(),
		}
	}

	return OrderDTO{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		ItemGroups: groups,
		TotalPrice: o.TotalPrice().Float64(),
	}
}

// OrderToAfterCreationDTO produces the creation acknowledgement carrying the
// generated order id and the computed total.
func OrderToAfterCreationDTO(o model.Order) OrderAfterCreationDTO {
	return OrderAfterCreationDTO{
		OrderID:    o.ID.String(),
		TotalPrice: o.TotalPrice().Float64(),
	}
}

// OrdersToReportDTO builds the cross-order report: one entry per order in
// input order, plus a grand total summing every order's total. An empty
// input yields an empty report with a zero grand total.
func OrdersToReportDTO(orders []model.Order) OrdersReportDTO {
	entries := make([]OrderReportDTO, len(orders))
	grandTotal := money.Zero

	for i, o := range orders {
		items := o.OrderItems()
		groups := make([]ItemGroupReportDTO, len(items))
		for j, item := range items {
			groups[j] = ItemGroupReportDTO{
				ItemID:        item.ItemID.String(),
				OrderedAmount: item.OrderedAmount,
				TotalPrice:    item.TotalPrice().Float64(),
			}
		}
		entries[i] = OrderReportDTO{
			OrderID:    o.ID.String(),
			ItemGroups: groups,
		}
		grandTotal = grandTotal.Add(o.TotalPrice())
	}

	return OrdersReportDTO{
		TotalPriceOfAllOrders: grandTotal.Float64(),
		Orders:                entries,
	}
}
