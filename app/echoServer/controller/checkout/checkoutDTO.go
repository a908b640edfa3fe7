package checkout

type FinalizeReq struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
}
