package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username      string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"size:120;not null" json:"-"`
	FullName      string    `gorm:"size:120;not null" json:"fullName"`
	Qualification string    `gorm:"size:120" json:"qualification"`
	DOB           time.Time `gorm:"type:date" json:"dob"`
	Role          UserRole  `gorm:"size:10;default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
