package main

import (
	_ "servicehub/docs"
	"servicehub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Booking Service API
// @version         1.0
// @description     Booking lifecycle and payment reconciliation service backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
