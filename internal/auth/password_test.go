package auth_test

import (
	"strings"
	"testing"

	"github.com/bitvara/backoffice/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	t.Run("round trip", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

		ok, err := hasher.Verify("correct horse battery staple", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("right-password")
		require.NoError(t, err)

		ok, err := hasher.Verify("wrong-password", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := hasher.Hash("password123")
		require.NoError(t, err)
		second, err := hasher.Hash("password123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := hasher.Verify("anything", "not-a-hash")
		assert.Error(t, err)
	})
}
