package main

import (
	"github.com/YourPalZack/junk-t/core/logger"
	"github.com/YourPalZack/junk-t/core/server"

	_ "github.com/YourPalZack/junk-t/docs" // Swagger docs
)

// @title Junk-T API
// @version 1.0
// @description Backend for the Junk-T junk-removal site: contact, appointment,
// @description quote-request forms and group dump run reservations.

// @contact.name API Support
// @contact.email support@junk-t.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
