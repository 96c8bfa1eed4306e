package main

import (
	"log"

	"go-retail-pos/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := app.RunWorker(); err != nil {
		log.Fatal(err)
	}
}
