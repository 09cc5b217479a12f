package handlers

import (
	"github.com/Majncz/MVOP-Q14/internal/auth"
	"github.com/Majncz/MVOP-Q14/internal/store"
)

type Handler struct {
	Auth  *AuthHandler
	Posts *PostHandler
}

func NewHandler(st store.Store, tokens *auth.Manager) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(st, tokens),
		Posts: NewPostHandler(st),
	}
}
