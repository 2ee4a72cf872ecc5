package models

import (
	"math"
	"time"
)

type Gender string
type FragranceFamily string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"

	FamilyFloral   FragranceFamily = "floral"
	FamilyWoody    FragranceFamily = "woody"
	FamilyOriental FragranceFamily = "oriental"
	FamilyFresh    FragranceFamily = "fresh"
	FamilyCitrus   FragranceFamily = "citrus"
	FamilyAromatic FragranceFamily = "aromatic"
)

type Perfume struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"unique;not null" json:"name"`
	Description     string          `json:"description"`
	Price           float64         `gorm:"not null" json:"price"`
	DiscountPercent float64         `json:"discount_percent"`
	ImageURL        string          `json:"image_url"`
	StockQuantity   int             `gorm:"not null;default:0" json:"stock_quantity"`
	Featured        bool            `json:"featured"`
	Bestseller      bool            `json:"bestseller"`
	Gender          Gender          `gorm:"type:VARCHAR(10)" json:"gender"`
	FragranceFamily FragranceFamily `gorm:"type:VARCHAR(20)" json:"fragrance_family"`

	BrandID    uint     `gorm:"not null;index" json:"brand_id"`
	Brand      Brand    `json:"brand"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DiscountedPrice is the effective unit price after the percentage
// discount, rounded to cents.
func (p Perfume) DiscountedPrice() float64 {
	return round2(p.Price * (1 - p.DiscountPercent/100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
