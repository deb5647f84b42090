package main

import (
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/stellar-client/config"
	"github.com/yeremiapane/stellar-client/database"
	"github.com/yeremiapane/stellar-client/router"
	"github.com/yeremiapane/stellar-client/utils"
)

// Runs the local stub of the burger API. The client core is a library;
// point it at this server (BURGER_API_URL=http://localhost:8080/api) for
// offline development.
func main() {
	utils.InitLogger()
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(sqlite.Open(cfg.StubDBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to open database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedIngredients(db); err != nil {
		utils.ErrorLogger.Fatalf("failed to seed ingredients: %v", err)
	}

	r := router.SetupRouter(db)

	utils.InfoLogger.Printf("stub burger API listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
