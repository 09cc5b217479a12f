package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/Majncz/MVOP-Q14/internal/models"
)

// uniqueViolation is the Postgres error code raised by a unique constraint.
const uniqueViolation = "23505"

type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `
		SELECT id, username, password_hash
		FROM users
		WHERE username=$1
	`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (s *Postgres) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
	`, u.ID, u.Username, u.PasswordHash)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *Postgres) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}

	var u models.User
	err := s.db.GetContext(ctx, &u, `
		SELECT id, username
		FROM users
		WHERE id=$1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

// postColumns is the shared listing projection: author joined in, like count
// computed by a correlated subquery.
const postColumns = `
	p.id,
	p.title,
	p.content,
	p.created_at,
	p.author_id,
	u.username,
	(SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id) AS like_count
`

func (s *Postgres) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.SelectContext(ctx, &posts, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON p.author_id = u.id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *Postgres) ListLikedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.SelectContext(ctx, &posts, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON p.author_id = u.id
		JOIN post_likes pl ON pl.post_id = p.id
		WHERE pl.user_id = $1
		ORDER BY p.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list liked posts: %w", err)
	}
	return posts, nil
}

func (s *Postgres) CreatePost(ctx context.Context, title, content, authorID string) (*models.Post, error) {
	p := models.Post{
		ID:       uuid.NewString(),
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO posts (id, title, content, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, p.ID, p.Title, p.Content, p.AuthorID).Scan(&p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := s.db.GetContext(ctx, &p.Username, `SELECT username FROM users WHERE id=$1`, authorID); err != nil {
		return nil, fmt.Errorf("create post: author lookup: %w", err)
	}
	return &p, nil
}

func (s *Postgres) FindPostByID(ctx context.Context, id string) (*models.Post, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotFound
	}

	var p models.Post
	err := s.db.GetContext(ctx, &p, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.id=$1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return &p, nil
}

// SetLike is a single atomic statement either way, so concurrent toggles on
// the same post cannot produce duplicate membership.
func (s *Postgres) SetLike(ctx context.Context, postID, userID string, like bool) error {
	var err error
	if like {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO post_likes (post_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT (post_id, user_id) DO NOTHING
		`, postID, userID)
	} else {
		_, err = s.db.ExecContext(ctx, `
			DELETE FROM post_likes
			WHERE post_id=$1 AND user_id=$2
		`, postID, userID)
	}
	if err != nil {
		return fmt.Errorf("set like: %w", err)
	}
	return nil
}
