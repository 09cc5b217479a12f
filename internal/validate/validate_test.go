package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{"valid", "ann", "secret1", ""},
		{"missing username", "", "secret1", "Username is required"},
		{"short username", "ab", "secret1", "Username must be at least 3 characters long"},
		{"missing password", "ann", "", "Password is required"},
		{"short password", "ann", "12345", "Password must be at least 6 characters long"},
		// first failing field wins
		{"both invalid", "ab", "12345", "Username must be at least 3 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Register(tt.username, tt.password)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			assert.NotNil(t, err)
			assert.Equal(t, tt.wantMsg, err.Message)
		})
	}
}

func TestLogin(t *testing.T) {
	assert.Nil(t, Login("ann", "x"))

	err := Login("", "x")
	assert.NotNil(t, err)
	assert.Equal(t, "Username is required", err.Message)

	err = Login("ann", "")
	assert.NotNil(t, err)
	assert.Equal(t, "Password is required", err.Message)
}

func TestCreatePost(t *testing.T) {
	assert.Nil(t, CreatePost("Hi there", "This is my first post"))

	err := CreatePost("ab", "long enough content")
	assert.NotNil(t, err)
	assert.Equal(t, "Title must be at least 3 characters long", err.Message)

	err = CreatePost("Hi there", "short")
	assert.NotNil(t, err)
	assert.Equal(t, "Content must be at least 10 characters long", err.Message)
}

func TestLike(t *testing.T) {
	yes, no := true, false
	assert.Nil(t, Like(&yes))
	assert.Nil(t, Like(&no))

	err := Like(nil)
	assert.NotNil(t, err)
	assert.Equal(t, "like", err.Field)
}
