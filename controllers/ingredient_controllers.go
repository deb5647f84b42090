package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/stellar-client/models"
	"github.com/yeremiapane/stellar-client/utils"
)

// IngredientController serves the catalog.
type IngredientController struct {
	DB *gorm.DB
}

func NewIngredientController(db *gorm.DB) *IngredientController {
	return &IngredientController{DB: db}
}

// GetAllIngredients serves the full catalog.
func (ic *IngredientController) GetAllIngredients(c *gin.Context) {
	var records []models.IngredientRecord
	if err := ic.DB.Order("id").Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items := make([]models.Ingredient, 0, len(records))
	for _, r := range records {
		items = append(items, r.ToIngredient())
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"data": items})
}
