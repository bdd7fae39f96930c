package main

import (
	_ "github.com/praja-pulse/campaign-backend/docs"
	"github.com/praja-pulse/campaign-backend/internal/bootstrap"
)

// @title Campaign Media Backend API
// @version 1.0.0
// @description News, social search and live transcription backend for the campaign tracker

// @host localhost:8080
// @BasePath /api/v1

func main() {
	bootstrap.Run()
}
