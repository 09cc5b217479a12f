package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Majncz/MVOP-Q14/internal/middleware"
	"github.com/Majncz/MVOP-Q14/internal/store"
	"github.com/Majncz/MVOP-Q14/internal/utils"
	"github.com/Majncz/MVOP-Q14/internal/validate"
)

type PostHandler struct {
	Store store.Store
}

func NewPostHandler(st store.Store) *PostHandler {
	return &PostHandler{Store: st}
}

// ---------------------- LIST ----------------------

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Store.ListPosts(r.Context())
	if err != nil {
		log.Printf("list posts: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSON(w, http.StatusOK, posts)
}

// ---------------------- LIST LIKED ----------------------

func (h *PostHandler) GetLikedPosts(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	posts, err := h.Store.ListLikedPosts(r.Context(), user.ID)
	if err != nil {
		log.Printf("list liked posts: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSON(w, http.StatusOK, posts)
}

// ---------------------- CREATE ----------------------

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}

	if verr := validate.CreatePost(body.Title, body.Content); verr != nil {
		utils.JSONError(w, http.StatusBadRequest, verr.Message)
		return
	}

	user, _ := middleware.UserFrom(r.Context())

	post, err := h.Store.CreatePost(r.Context(), body.Title, body.Content, user.ID)
	if err != nil {
		log.Printf("create post: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSON(w, http.StatusCreated, post)
}

// ---------------------- LIKE / UNLIKE ----------------------

func (h *PostHandler) SetLike(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Like *bool `json:"like"`
	}

	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}

	if verr := validate.Like(body.Like); verr != nil {
		utils.JSONError(w, http.StatusBadRequest, verr.Message)
		return
	}

	postID := chi.URLParam(r, "id")

	_, err := h.Store.FindPostByID(r.Context(), postID)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		log.Printf("set like: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, _ := middleware.UserFrom(r.Context())

	if err := h.Store.SetLike(r.Context(), postID, user.ID, *body.Like); err != nil {
		log.Printf("set like: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Post liked/unliked successfully"})
}
