package models

import "time"

// CartItem is a pending purchase line item. At most one item exists per
// (product, size, color) tuple per user; repeated adds accumulate quantity
// instead of creating a second row.
type CartItem struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ProductID string    `bson:"product_id" json:"product_id"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	Size      string    `bson:"size,omitempty" json:"size,omitempty"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	// Product carries the denormalized product fields attached by the
	// repository's join-style expansion. Never written back.
	Product *ProductSummary `bson:"product,omitempty" json:"product,omitempty"`
}

// ProductSummary is the slice of product data a cart line needs for display
// and checkout.
type ProductSummary struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Price    int64  `bson:"price" json:"price"` // paise
	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// VariantKey returns the identity of this item's (product, size, color) tuple.
func (i CartItem) VariantKey() string {
	return i.ProductID + "|" + i.Size + "|" + i.Color
}

// UnitPrice returns the denormalized unit price, zero when the product
// expansion is missing.
func (i CartItem) UnitPrice() int64 {
	if i.Product == nil {
		return 0
	}
	return i.Product.Price
}

// CartTotals are derived aggregates over a cart's items. They are recomputed
// from the item list on every read and never persisted.
type CartTotals struct {
	TotalItems  int   `json:"total_items"`
	TotalAmount int64 `json:"total_amount"` // paise
}
