package models

import "time"

type Brand struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	Perfumes    []Perfume `gorm:"foreignKey:BrandID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
