package main

import (
	"log"
	"os"

	"github.com/kunalgupta016/street-clean-eats/config"
	"github.com/kunalgupta016/street-clean-eats/logger"
	"github.com/kunalgupta016/street-clean-eats/routes"
	"github.com/kunalgupta016/street-clean-eats/utils"
)

func main() {
	if err := logger.Init(); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	config.InitDB()
	utils.InitS3()

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
