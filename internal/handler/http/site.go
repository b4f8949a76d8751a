package http

import (
	"net/http"

	"github.com/vheb/biomap/internal/utils"
)

// home is the landing payload: a short description and the entry points a
// client needs to start searching the catalog.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"name":        "biomap",
		"version":     h.version,
		"description": "catalog of endangered Brazilian species with occurrence maps",
		"search":      "/search/result?name=",
		"suggestions": "/search/suggestions?q=",
	}, http.StatusOK)
}

// about describes the project and how records enter the catalog.
func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"project": "biomap",
		"about": "biomap catalogs endangered species assessed in Brazil. Records are " +
			"submitted by registered researchers and educational institutions; each " +
			"record carries the taxonomic chain, the conservation assessment, and the " +
			"states or macro-regions where the species occurs.",
		"contact": "/contact",
	}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.version))
}
