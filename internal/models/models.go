package models

import (
	"time"
)

type User struct {
	UUID       string    `gorm:"column:uuid;primaryKey;size:36" json:"uuid"`
	UserName   string    `gorm:"size:20;unique;not null"        json:"user_name"`
	Mail       string    `gorm:"size:50;unique;not null"        json:"mail"`
	Password   string    `gorm:"not null"                       json:"-"`
	IsBlocked  bool      `gorm:"not null;default:false"         json:"isBlocked"`
	SignUpDate time.Time `gorm:"not null"                       json:"sign_up_date"`
	IsDeleted  bool      `gorm:"not null;default:false"         json:"isDeleted"`
	Reviews    []Review  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

type Product struct {
	ID        string   `gorm:"primaryKey;size:36"          json:"id"`
	Name      string   `gorm:"not null"                    json:"name"`
	Image     string   `gorm:"not null"                    json:"image"`
	Price     float64  `gorm:"type:decimal(10,2);not null" json:"price"`
	IsSpecial bool     `gorm:"not null;default:false"      json:"isSpecial"`
	Discount  *int     `json:"discount"`
	Reviews   []Review `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string { return "products" }

type Review struct {
	ReviewID       int       `gorm:"primaryKey;autoIncrement" json:"review_id"`
	ProductID      string    `gorm:"size:36;not null;index"   json:"product_id"`
	UserID         string    `gorm:"size:36;not null;index"   json:"user_id"`
	Content        string    `gorm:"size:255;not null"        json:"content"`
	SubmissionDate time.Time `gorm:"not null"                 json:"submission_date"`
	Rating         int       `gorm:"not null"                 json:"rating"`
	IsDeleted      bool      `gorm:"not null;default:false"   json:"isDeleted"`
	IsFlagged      bool      `gorm:"not null;default:false"   json:"isFlagged"`
}

func (Review) TableName() string { return "reviews" }
