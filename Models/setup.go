package Models

import (
	"log"

	"DentaDesk/Constants"

	"github.com/joho/godotenv"
)

var DB *Store

func ConnectStore() {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment as-is")
	}
	Constants.Load()

	DB = Open(Constants.DataDir)
}
