package request

// CreateProductRequest is the create product payload. Amounts are in currency
// units and converted to cents at the handler boundary.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	BatchCode   string   `json:"batch_code"`
	Description *string  `json:"description"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	CostPrice   float64  `json:"cost_price" binding:"gte=0"`
	VatPercent  int      `json:"vat_percent" binding:"gte=0,lte=100"`
	Quantity    int      `json:"quantity" binding:"gte=0"`
	AlertQty    int      `json:"alert_qty" binding:"gte=0"`
	Unit        string   `json:"unit"`
	ExpireDate  *string  `json:"expire_date"` // YYYY-MM-DD
	CategoryID  string   `json:"category_id" binding:"required,uuid"`
	SupplierID  *string  `json:"supplier_id" binding:"omitempty,uuid"`
}

// UpdateProductRequest is the partial update payload
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	BatchCode   *string  `json:"batch_code"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	CostPrice   *float64 `json:"cost_price" binding:"omitempty,gte=0"`
	VatPercent  *int     `json:"vat_percent" binding:"omitempty,gte=0,lte=100"`
	AlertQty    *int     `json:"alert_qty" binding:"omitempty,gte=0"`
	Unit        *string  `json:"unit"`
	ExpireDate  *string  `json:"expire_date"` // YYYY-MM-DD
	CategoryID  *string  `json:"category_id" binding:"omitempty,uuid"`
	SupplierID  *string  `json:"supplier_id" binding:"omitempty,uuid"`
}

// RestockRequest is the restock payload
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// CategoryRequest is the create/update category payload
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// SupplierRequest is the create/update supplier payload
type SupplierRequest struct {
	Name    string  `json:"name" binding:"required"`
	Type    string  `json:"type" binding:"required,oneof=distributor wholesaler producer"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}
