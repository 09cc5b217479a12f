package handlers

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Majncz/MVOP-Q14/internal/auth"
	"github.com/Majncz/MVOP-Q14/internal/middleware"
	"github.com/Majncz/MVOP-Q14/internal/store"
)

// NewRouter wires every endpoint onto a chi router. Tests mount the same
// router over httptest so routing and middleware are exercised end to end.
func NewRouter(st store.Store, tokens *auth.Manager) chi.Router {
	h := NewHandler(st, tokens)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	// Public
	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, st))

		r.Get("/user", h.Auth.Me)

		r.Get("/posts", h.Posts.GetPosts)
		r.Get("/posts/liked", h.Posts.GetLikedPosts)
		r.Post("/posts", h.Posts.CreatePost)
		r.Patch("/posts/{id}/like", h.Posts.SetLike)
	})

	return r
}
