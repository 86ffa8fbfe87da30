package models

import "time"

// Product is a storefront catalog entry. Prices are integer paise.
type Product struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Price         int64     `bson:"price" json:"price"`
	OriginalPrice int64     `bson:"original_price,omitempty" json:"original_price,omitempty"`
	ImageURL      string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Images        []string  `bson:"images,omitempty" json:"images,omitempty"`
	Sizes         []string  `bson:"sizes,omitempty" json:"sizes,omitempty"`
	Colors        []string  `bson:"colors,omitempty" json:"colors,omitempty"`
	StyleTags     []string  `bson:"style_tags,omitempty" json:"style_tags,omitempty"`
	CategoryID    string    `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Stock         int       `bson:"stock" json:"stock"`
	Rating        float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	ReviewCount   int       `bson:"review_count,omitempty" json:"review_count,omitempty"`
	IsActive      bool      `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Summary projects a Product down to the fields a cart line carries.
func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	}
}

// Category groups products for browsing.
type Category struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	ImageURL  string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
