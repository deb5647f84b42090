package models

import (
	"encoding/json"
	"time"
)

// Records below back the local stub of the remote service. They are gorm
// models, not wire types; each converts to its wire counterpart.

type UserRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r UserRecord) ToUser() User {
	return User{Email: r.Email, Name: r.Name}
}

type IngredientRecord struct {
	ID            uint   `gorm:"primaryKey"`
	PublicID      string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name          string `gorm:"type:varchar(255);not null"`
	Type          string `gorm:"type:varchar(20);not null"`
	Proteins      int
	Fat           int
	Carbohydrates int
	Calories      int
	Price         int    `gorm:"not null"`
	Image         string `gorm:"type:varchar(255)"`
	ImageMobile   string `gorm:"type:varchar(255)"`
	ImageLarge    string `gorm:"type:varchar(255)"`
}

func (r IngredientRecord) ToIngredient() Ingredient {
	return Ingredient{
		ID:            r.PublicID,
		Name:          r.Name,
		Type:          r.Type,
		Proteins:      r.Proteins,
		Fat:           r.Fat,
		Carbohydrates: r.Carbohydrates,
		Calories:      r.Calories,
		Price:         r.Price,
		Image:         r.Image,
		ImageMobile:   r.ImageMobile,
		ImageLarge:    r.ImageLarge,
	}
}

type OrderRecord struct {
	ID            uint   `gorm:"primaryKey"`
	PublicID      string `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID        uint   `gorm:"index;not null"`
	Status        string `gorm:"type:varchar(20);not null;default:'created'"`
	Name          string `gorm:"type:varchar(255);not null"`
	IngredientIDs string `gorm:"type:text;not null"` // JSON array of catalog ids, as submitted
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r OrderRecord) ToOrder() Order {
	var ids []string
	if err := json.Unmarshal([]byte(r.IngredientIDs), &ids); err != nil {
		ids = []string{}
	}
	return Order{
		ID:          r.PublicID,
		Ingredients: ids,
		Status:      r.Status,
		Name:        r.Name,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Number:      int(r.ID),
	}
}

type RefreshTokenRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    uint   `gorm:"index;not null"`
	CreatedAt time.Time
}
