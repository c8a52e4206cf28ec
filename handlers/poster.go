package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"

	metadatapkg "cineworld/services/metadata"
)

// PosterHandler proxies poster images so browsers only talk to this service.
type PosterHandler struct {
	Service movieService
}

func NewPosterHandler(s movieService) *PosterHandler {
	return &PosterHandler{Service: s}
}

// ServeHTTP handles GET /api/poster/{size}/{file}.
func (h *PosterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	body, err := h.Service.Poster(r.Context(), vars["size"], vars["file"])
	if err != nil {
		if errors.Is(err, metadatapkg.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "poster not found"})
			return
		}
		log.Printf("[poster] fetch %s/%s failed: %v", vars["size"], vars["file"], err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	mt := mimetype.Detect(body)
	if !strings.HasPrefix(mt.String(), "image/") {
		log.Printf("[poster] rejecting %s/%s: upstream sent %s", vars["size"], vars["file"], mt.String())
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream returned a non-image body"})
		return
	}

	w.Header().Set("Content-Type", mt.String())
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
