package models

// Vendor identifies the shop selling a product.
type Vendor struct {
	ID       string `json:"id"`
	ShopName string `json:"shop_name"`
}

// Variant is one purchasable configuration of a product. Color and Size are
// selection axes; an empty string means the variant does not define that
// axis. Price, when set, overrides the product's base price.
type Variant struct {
	ID    string `json:"id"`
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
	SKU   string `json:"sku,omitempty"`
	Stock int    `json:"stock"`
	Price string `json:"price,omitempty"`
}

// Product is a catalog entry. Price is a decimal string and is passed
// through for display; the client never does money arithmetic on it beyond
// per-line presentation.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       string            `json:"price"`
	Stock       int               `json:"stock"`
	Images      []string          `json:"images,omitempty"`
	Vendor      Vendor            `json:"vendor"`
	Variants    []Variant         `json:"variants,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// ProductPage is the response shape of GET /products.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
