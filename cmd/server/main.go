package main

import (
	"github.com/blogloom/backend/internal/router"
	"github.com/blogloom/backend/pkg/config"
	"github.com/blogloom/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
