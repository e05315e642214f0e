package main

import (
	"os"

	"github.com/rogerio-castellano/inventory-dashboard/internal/cli"
)

// @title Inventory Dashboard API
// @version 1.0
// @description REST API for products, restock logs, the dashboard summary and stock analytics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
