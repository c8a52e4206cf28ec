package handlers

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

//go:embed static/*
var staticAssets embed.FS

// StaticHandler serves the embedded stylesheet and images under /static/.
type StaticHandler struct {
	files      fs.FS
	fileServer http.Handler
}

func NewStaticHandler() *StaticHandler {
	staticFS, err := fs.Sub(staticAssets, "static")
	if err != nil {
		panic("failed to get static subdirectory: " + err.Error())
	}
	return &StaticHandler{
		files:      staticFS,
		fileServer: http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=31536000")

	// Text assets keep the extension-based type; mimetype cannot tell CSS
	// from plain text.
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/static/")
	switch path.Ext(name) {
	case ".css", ".js", "":
	default:
		if data, err := fs.ReadFile(h.files, name); err == nil {
			w.Header().Set("Content-Type", mimetype.Detect(data).String())
		}
	}

	h.fileServer.ServeHTTP(w, r)
}
