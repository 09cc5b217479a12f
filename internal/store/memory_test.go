package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	u, err := s.CreateUser(ctx, "ann", "hash1")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	_, err = s.CreateUser(ctx, "ann", "hash2")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	found, err := s.FindUserByUsername(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "hash1", found.PasswordHash)

	_, err = s.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)

	// the by-id projection excludes the password hash
	byID, err := s.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", byID.Username)
	assert.Empty(t, byID.PasswordHash)
}

func TestMemoryListPostsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	ann, err := s.CreateUser(ctx, "ann", "hash")
	require.NoError(t, err)

	first, err := s.CreatePost(ctx, "First", "first post content", ann.ID)
	require.NoError(t, err)
	second, err := s.CreatePost(ctx, "Second", "second post content", ann.ID)
	require.NoError(t, err)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.Equal(t, "ann", posts[0].Username)
	assert.EqualValues(t, 0, posts[0].LikeCount)
}

func TestMemorySetLikeIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	ann, err := s.CreateUser(ctx, "ann", "hash")
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	post, err := s.CreatePost(ctx, "Hi there", "This is my first post", ann.ID)
	require.NoError(t, err)

	// unliking a post nobody liked is a no-op
	require.NoError(t, s.SetLike(ctx, post.ID, bob.ID, false))

	require.NoError(t, s.SetLike(ctx, post.ID, ann.ID, true))
	require.NoError(t, s.SetLike(ctx, post.ID, ann.ID, true))
	require.NoError(t, s.SetLike(ctx, post.ID, bob.ID, true))

	found, err := s.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, found.LikeCount)

	require.NoError(t, s.SetLike(ctx, post.ID, bob.ID, false))
	require.NoError(t, s.SetLike(ctx, post.ID, bob.ID, false))

	found, err = s.FindPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, found.LikeCount)
}

func TestMemoryListLikedPosts(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	ann, err := s.CreateUser(ctx, "ann", "hash")
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	p1, err := s.CreatePost(ctx, "First", "first post content", ann.ID)
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, "Second", "second post content", ann.ID)
	require.NoError(t, err)
	p3, err := s.CreatePost(ctx, "Third", "third post content", ann.ID)
	require.NoError(t, err)

	require.NoError(t, s.SetLike(ctx, p1.ID, bob.ID, true))
	require.NoError(t, s.SetLike(ctx, p3.ID, bob.ID, true))

	liked, err := s.ListLikedPosts(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, liked, 2)
	// same newest-first order as the unfiltered listing
	assert.Equal(t, p3.ID, liked[0].ID)
	assert.Equal(t, p1.ID, liked[1].ID)

	liked, err = s.ListLikedPosts(ctx, ann.ID)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestMemoryFindPostByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := s.FindPostByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
