package models

import (
	"time"

	"gorm.io/gorm"
)

type BusinessType string

const (
	TypeSupermarket BusinessType = "Supermarket"
	TypePharmacy    BusinessType = "Pharmacy"
	TypeRestaurant  BusinessType = "Restaurant"
)

// BusinessTypes is the closed set of valid types, in display order.
var BusinessTypes = []BusinessType{TypeSupermarket, TypePharmacy, TypeRestaurant}

func (t BusinessType) Valid() bool {
	for _, known := range BusinessTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Business struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	Type      BusinessType   `gorm:"not null" json:"type"`
	Branches  []Branch       `gorm:"foreignKey:BusinessID" json:"branches,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Branch struct {
	ID         int64          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	BusinessID uint           `gorm:"not null;index" json:"business_id"`
	Address    string         `gorm:"not null" json:"address"`
	City       string         `gorm:"not null;index" json:"city"`
	Area       string         `gorm:"index" json:"area"`
	Latitude   float64        `gorm:"not null" json:"latitude"`
	Longitude  float64        `gorm:"not null" json:"longitude"`
	Hours      []BranchHours  `gorm:"foreignKey:BranchID" json:"hours,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a clock-based id so branch ids stay unique
// across all businesses, not just within one.
func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == 0 {
		b.ID = time.Now().UnixMilli()
	}
	return nil
}
