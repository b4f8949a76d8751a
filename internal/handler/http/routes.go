package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/about", h.about)
		r.Get("/version", h.getServerVersion)

		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)

		r.Get("/search/suggestions", h.searchSuggestions)
		r.Get("/search/result", h.searchResult)

		r.Post("/contact", h.contact)
	})

	// routes behind JWT authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/profile", h.getProfile)
		r.Put("/profile", h.updateProfile)

		r.Post("/species", h.createSpecies)
	})

	// rendered occurrence maps referenced by search results
	router.Handle("/media/maps/*", http.StripPrefix("/media/maps/", http.FileServer(http.Dir(h.mapsDir))))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
