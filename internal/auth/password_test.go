package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	assert.NotEqual(t, "pw", hash)
	assert.NotEmpty(t, hash)

	// bcrypt salts every hash
	other, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "match", password: "correct horse battery staple", hash: hash, want: true},
		{name: "mismatch", password: "wrong", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: "pw", hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash", password: "pw", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password, tt.hash))
		})
	}
}
