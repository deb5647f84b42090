// Package database prepares the stub API's schema and fixtures.
package database

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/stellar-client/models"
	"github.com/yeremiapane/stellar-client/utils"
)

// Migrate creates the stub schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserRecord{},
		&models.IngredientRecord{},
		&models.OrderRecord{},
		&models.RefreshTokenRecord{},
	)
}

// SeedIngredients loads the catalog fixtures once; an already seeded
// database is left alone.
func SeedIngredients(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.IngredientRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fixtures := []models.IngredientRecord{
		{PublicID: "643d69a5c3f7b9001cfa093c", Name: "Fluorescent bun", Type: models.IngredientTypeBun, Proteins: 44, Fat: 26, Carbohydrates: 85, Calories: 643, Price: 988, Image: "https://code.s3.yandex.net/react/code/bun-02.png"},
		{PublicID: "643d69a5c3f7b9001cfa093d", Name: "Crater bun", Type: models.IngredientTypeBun, Proteins: 80, Fat: 24, Carbohydrates: 53, Calories: 420, Price: 1255, Image: "https://code.s3.yandex.net/react/code/bun-01.png"},
		{PublicID: "643d69a5c3f7b9001cfa0941", Name: "Martian Magnolia cutlet", Type: models.IngredientTypeMain, Proteins: 420, Fat: 142, Carbohydrates: 242, Calories: 4242, Price: 424, Image: "https://code.s3.yandex.net/react/code/meat-01.png"},
		{PublicID: "643d69a5c3f7b9001cfa093e", Name: "Luminescent fillet", Type: models.IngredientTypeMain, Proteins: 44, Fat: 26, Carbohydrates: 85, Calories: 643, Price: 988, Image: "https://code.s3.yandex.net/react/code/meat-03.png"},
		{PublicID: "643d69a5c3f7b9001cfa0942", Name: "Spicy X sauce", Type: models.IngredientTypeSauce, Proteins: 30, Fat: 20, Carbohydrates: 40, Calories: 30, Price: 90, Image: "https://code.s3.yandex.net/react/code/sauce-02.png"},
		{PublicID: "643d69a5c3f7b9001cfa0943", Name: "Space sauce", Type: models.IngredientTypeSauce, Proteins: 50, Fat: 22, Carbohydrates: 11, Calories: 14, Price: 80, Image: "https://code.s3.yandex.net/react/code/sauce-04.png"},
		{PublicID: "643d69a5c3f7b9001cfa0944", Name: "Traditional galactic sauce", Type: models.IngredientTypeSauce, Proteins: 42, Fat: 24, Carbohydrates: 42, Calories: 99, Price: 15, Image: "https://code.s3.yandex.net/react/code/sauce-03.png"},
		{PublicID: "643d69a5c3f7b9001cfa0945", Name: "Antarian flatwalker sole", Type: models.IngredientTypeMain, Proteins: 44, Fat: 22, Carbohydrates: 33, Calories: 300, Price: 874, Image: "https://code.s3.yandex.net/react/code/sp_1.png"},
		{PublicID: "643d69a5c3f7b9001cfa0946", Name: "Crispy mineral rings", Type: models.IngredientTypeMain, Proteins: 808, Fat: 689, Carbohydrates: 609, Calories: 986, Price: 300, Image: "https://code.s3.yandex.net/react/code/mineral_rings.png"},
		{PublicID: "643d69a5c3f7b9001cfa0947", Name: "Falleni fruit rings", Type: models.IngredientTypeMain, Proteins: 5, Fat: 2, Carbohydrates: 77, Calories: 77, Price: 80, Image: "https://code.s3.yandex.net/react/code/sp_2.png"},
	}

	if err := db.Create(&fixtures).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("seeded %d catalog ingredients", len(fixtures))
	return nil
}
