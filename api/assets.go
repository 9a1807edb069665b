package api

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed assets/*.svg
var embeddedAssets embed.FS

// assetsHandler serves the icons. An empty dir uses the set built into the
// binary, otherwise files are read from dir
func assetsHandler(dir string) fiber.Handler {
	if dir == "" {
		return filesystem.New(filesystem.Config{
			Root:       http.FS(embeddedAssets),
			PathPrefix: "assets",
			MaxAge:     3600,
		})
	}
	return filesystem.New(filesystem.Config{
		Root:   http.Dir(dir),
		MaxAge: 3600,
	})
}
