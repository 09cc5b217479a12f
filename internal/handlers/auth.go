package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Majncz/MVOP-Q14/internal/auth"
	"github.com/Majncz/MVOP-Q14/internal/middleware"
	"github.com/Majncz/MVOP-Q14/internal/store"
	"github.com/Majncz/MVOP-Q14/internal/utils"
	"github.com/Majncz/MVOP-Q14/internal/validate"
)

type AuthHandler struct {
	Store  store.Store
	Creds *auth.Manager
}

func NewAuthHandler(st store.Store, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{Store: st, Creds: tokens}
}

// ----------- Request DTOs -------------

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// -------------- REGISTER ----------------------

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if verr := validate.Register(req.Username, req.Password); verr != nil {
		utils.JSONError(w, http.StatusBadRequest, verr.Message)
		return
	}

	// Friendly pre-check; the unique constraint closes the remaining race.
	_, err := h.Store.FindUserByUsername(r.Context(), req.Username)
	if err == nil {
		utils.JSONError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("register: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hash, err := h.Creds.HashPassword(req.Password)
	if err != nil {
		log.Printf("register: hash: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.Store.CreateUser(r.Context(), req.Username, hash)
	if errors.Is(err, store.ErrUsernameTaken) {
		utils.JSONError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		log.Printf("register: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.Creds.IssueToken(user.ID)
	if err != nil {
		log.Printf("register: token: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]string{"token": token})
}

// -------------- LOGIN ------------------------

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if verr := validate.Login(req.Username, req.Password); verr != nil {
		utils.JSONError(w, http.StatusBadRequest, verr.Message)
		return
	}

	user, err := h.Store.FindUserByUsername(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusUnauthorized, "User not found")
		return
	}
	if err != nil {
		log.Printf("login: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !h.Creds.VerifyPassword(req.Password, user.PasswordHash) {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Creds.IssueToken(user.ID)
	if err != nil {
		log.Printf("login: token: %v", err)
		utils.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// -------------- ME (protected) ----------------

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	utils.JSON(w, http.StatusOK, user)
}
