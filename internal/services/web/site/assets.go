package site

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// DefaultAssetsDir holds gallery and artist media on disk.
const DefaultAssetsDir = "public"

// staticHandler serves the embedded stylesheet and chat script.
func staticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// assetsHandler serves site media from disk. Requests keep their
// /images prefix, matching the directory layout under dir.
func assetsHandler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
