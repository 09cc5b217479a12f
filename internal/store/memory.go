package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Majncz/MVOP-Q14/internal/models"
)

// Memory is an in-process Store with the same observable behavior as the
// Postgres backend. It backs handler tests and local development.
type Memory struct {
	mu      sync.Mutex
	users   []models.User
	posts   []models.Post // insertion order; listings iterate in reverse
	likedBy map[string]map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{likedBy: make(map[string]map[string]struct{})}
}

func (s *Memory) Close() error { return nil }

func (s *Memory) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrUsernameTaken
		}
	}

	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *Memory) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return &models.User{ID: u.ID, Username: u.Username}, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) ListPosts(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, 0, len(s.posts))
	for i := len(s.posts) - 1; i >= 0; i-- {
		posts = append(posts, s.project(s.posts[i]))
	}
	return posts, nil
}

func (s *Memory) ListLikedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := []models.Post{}
	for i := len(s.posts) - 1; i >= 0; i-- {
		if _, ok := s.likedBy[s.posts[i].ID][userID]; ok {
			posts = append(posts, s.project(s.posts[i]))
		}
	}
	return posts, nil
}

func (s *Memory) CreatePost(ctx context.Context, title, content, authorID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var username string
	for _, u := range s.users {
		if u.ID == authorID {
			username = u.Username
		}
	}

	p := models.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
		AuthorID:  authorID,
		Username:  username,
	}
	s.posts = append(s.posts, p)
	return &p, nil
}

func (s *Memory) FindPostByID(ctx context.Context, id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			proj := s.project(p)
			return &proj, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) SetLike(ctx context.Context, postID, userID string, like bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if like {
		if s.likedBy[postID] == nil {
			s.likedBy[postID] = make(map[string]struct{})
		}
		s.likedBy[postID][userID] = struct{}{}
	} else {
		delete(s.likedBy[postID], userID)
	}
	return nil
}

func (s *Memory) project(p models.Post) models.Post {
	p.LikeCount = int64(len(s.likedBy[p.ID]))
	return p
}
