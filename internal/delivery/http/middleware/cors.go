package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - Cross-Origin Resource Sharing без credentials.
// allowOrigins - список через запятую, пустая строка означает любой источник.
func CORS(allowOrigins string) fiber.Handler {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Content-Type,Accept,X-Request-ID",
		ExposeHeaders: "X-Request-ID,Retry-After",
	})
}
