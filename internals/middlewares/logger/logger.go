package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// RequestLogger mencatat satu baris ringkasan per request, konsisten dengan
// tag [REQ] yang dipakai log aplikasi lain.
func RequestLogger() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "02-Jan-2006 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[REQ] ${time} ${status} ${method} ${path} ${latency} ip=${ip}\n",
	})
}
