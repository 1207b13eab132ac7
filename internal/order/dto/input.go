package dto

type PlaceOrderInput struct {
	Items []OrderItemInput
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int64
}
