package catalog

// Product is a single catalog entry. Products are immutable after load and
// have no unique id; identity is positional within the catalog.
type Product struct {
	Name              string   `json:"name"`
	Brand             string   `json:"brand,omitempty"`
	Category          string   `json:"category"`
	Features          string   `json:"features"`
	UsageInstructions string   `json:"usage_instructions"`
	Ingredients       []string `json:"ingredients"`
	PriceBDT          float64  `json:"price_bdt"`
	Suitability       string   `json:"suitability"`
}

// Brand groups the products sold under one brand name
type Brand struct {
	BrandName string    `json:"brand_name"`
	Products  []Product `json:"products"`
}

// Catalog is the nested brand/product structure loaded once at startup
type Catalog struct {
	Brands []Brand `json:"brands"`
}

// Flatten returns all products in catalog order with the brand name
// denormalized onto each product.
func (c *Catalog) Flatten() []Product {
	products := make([]Product, 0)
	for _, b := range c.Brands {
		name := b.BrandName
		if name == "" {
			name = "Unknown Brand"
		}
		for _, p := range b.Products {
			p.Brand = name
			products = append(products, p)
		}
	}
	return products
}
