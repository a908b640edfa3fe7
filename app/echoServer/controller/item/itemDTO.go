package item

type CreateItemReq struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description"`
	Amount      float64 `form:"amount" validate:"required,gte=0"`
	Quantity    int64   `form:"quantity" validate:"required,gte=0"`
	Category    string  `form:"category" validate:"required"`
}
