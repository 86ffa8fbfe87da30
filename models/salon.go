package models

import "time"

// Salon is a bookable venue.
type Salon struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city" json:"city"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	PriceRange  string    `bson:"price_range,omitempty" json:"price_range,omitempty"`
	Latitude    float64   `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   float64   `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Rating      float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	ReviewCount int       `bson:"review_count,omitempty" json:"review_count,omitempty"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	IsVerified  bool      `bson:"is_verified" json:"is_verified"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// SalonService is a single offering of a salon (e.g. a haircut). Price in paise.
type SalonService struct {
	ID              string    `bson:"id" json:"id"`
	SalonID         string    `bson:"salon_id" json:"salon_id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Category        string    `bson:"category,omitempty" json:"category,omitempty"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Price           int64     `bson:"price" json:"price"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
