package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// unescapeParam devuelve el path param decodificado. Los tipos de sangre
// llegan con el '+' escapado como %2B según el cliente.
func unescapeParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
