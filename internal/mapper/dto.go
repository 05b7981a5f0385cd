package mapper

// Wire DTOs consumed and produced at the transport boundary. Field names and
// JSON keys are part of the public API and must stay stable.

// AddressDTO is the wire form of a postal address.
type AddressDTO struct {
	StreetName  string `json:"streetName"`
	HouseNumber string `json:"houseNumber"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

// CustomerDTO is the wire form of a customer. ID is empty on creation
// requests and filled on responses.
type CustomerDTO struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	EmailAddress string     `json:"emailAddress"`
	Address      AddressDTO `json:"address"`
}

// ItemDTO is the wire form of a catalogue item.
type ItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ItemGroupDTO is a requested (item, quantity) pair inside an order
// creation request.
type ItemGroupDTO struct {
	ItemID        string `json:"itemId"`
	OrderedAmount int    `json:"orderedAmount"`
}

// OrderCreationDTO is the request payload for creating an order.
type OrderCreationDTO struct {
	CustomerID string         `json:"customerId"`
	ItemGroups []ItemGroupDTO `json:"itemGroups"`
}

// OrderAfterCreationDTO acknowledges a created order with its computed total.
type OrderAfterCreationDTO struct {
	OrderID    string  `json:"orderId"`
	TotalPrice float64 `json:"totalPrice"`
}

// OrderItemDTO is the read view of an order line, including the unit price
// snapshotted at creation time.
type OrderItemDTO struct {
	ItemID        string  `json:"itemId"`
	OrderedAmount int     `json:"orderedAmount"`
	ItemPrice     float64 `json:"itemPrice"`
}

// OrderDTO is the read view of a single order.
type OrderDTO struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customerId"`
	ItemGroups []OrderItemDTO `json:"itemGroups"`
	TotalPrice float64        `json:"totalPrice"`
}

// ItemGroupReportDTO summarises one order line inside a report.
type ItemGroupReportDTO struct {
	ItemID        string  `json:"itemId"`
	OrderedAmount int     `json:"orderedAmount"`
	TotalPrice    float64 `json:"totalPrice"`
}

// OrderReportDTO is one order's entry in the cross-order report.
type OrderReportDTO struct {
	OrderID    string               `json:"orderId"`
	ItemGroups []ItemGroupReportDTO `json:"itemGroups"`
}

// OrdersReportDTO aggregates every order into a single grand total.
type OrdersReportDTO struct {
	TotalPriceOfAllOrders float64          `json:"totalPriceOfAllOrders"`
	Orders                []OrderReportDTO `json:"orders"`
}
