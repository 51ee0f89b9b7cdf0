package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/skyfell/obslogbackend/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cmd.Execute()
}
