package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// every other route sits behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/messages", h.createMessage)
		r.Get("/api/messages", h.homeTimeline)
		r.Get("/api/messages/{messageID}", h.getMessage)
		r.Delete("/api/messages/{messageID}", h.deleteMessage)

		r.Get("/api/users/{userID}", h.profile)
		r.Get("/api/users/{userID}/messages", h.userTimeline)
		r.Post("/api/users/{userID}/follow", h.follow)
		r.Delete("/api/users/{userID}/follow", h.unfollow)
		r.Get("/api/users/{userID}/following", h.following)
		r.Get("/api/users/{userID}/followers", h.followers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
