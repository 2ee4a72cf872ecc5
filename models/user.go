package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Name         string   `json:"name"`
	Email        string   `gorm:"unique;not null" json:"email"`
	Password     string   `json:"-"`
	PhoneNumber  string   `json:"phone_number"`
	Role         UserRole `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	IsGoogleUser bool     `json:"is_google_user"`

	Cart      Cart       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"foreignKey:UserID" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
