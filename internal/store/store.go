// Package store is the persistence boundary. Handlers depend on the Store
// interface only; the concrete backend is chosen at startup.
package store

import (
	"context"
	"errors"

	"github.com/Majncz/MVOP-Q14/internal/models"
)

var (
	// ErrNotFound is returned when a looked-up user or post does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned by CreateUser on a duplicate username,
	// whether caught by the pre-check or by the unique constraint.
	ErrUsernameTaken = errors.New("username taken")
)

type Store interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	// FindUserByID excludes the password hash from the returned projection.
	FindUserByID(ctx context.Context, id string) (*models.User, error)

	// ListPosts returns all posts newest-first, each with the author's
	// username and the current like count.
	ListPosts(ctx context.Context) ([]models.Post, error)
	// ListLikedPosts returns the subset of ListPosts liked by userID,
	// in the same order and shape.
	ListLikedPosts(ctx context.Context, userID string) ([]models.Post, error)
	CreatePost(ctx context.Context, title, content, authorID string) (*models.Post, error)
	FindPostByID(ctx context.Context, id string) (*models.Post, error)

	// SetLike adds userID to the post's likers when like is true and removes
	// it otherwise. Both directions are idempotent.
	SetLike(ctx context.Context, postID, userID string, like bool) error

	Close() error
}
