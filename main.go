package main

import (
	"log"

	"riderservice/configs"
	"riderservice/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// Bootstrap runs to completion before the router accepts traffic:
	// wait for the store, create schema, best-effort raw migration, seed.
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect database: %v", err)
	}
	db := configs.DB()

	if err := configs.WaitForDB(db, cfg.DBWaitRetries, cfg.DBWaitDelay); err != nil {
		log.Fatalf("database never became available: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}
	if err := configs.RunSQLScript(db, cfg.MigrationPath); err != nil {
		log.Fatalf("run migration script: %v", err)
	}
	if _, err := configs.SeedRiders(db, cfg.SeedPath); err != nil {
		log.Fatalf("seed riders: %v", err)
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)

	log.Printf("rider service listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
