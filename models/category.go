package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	Perfumes    []Perfume `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
