package shortid_test

import (
	"testing"

	"asada-api/pkg/shortid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Success - generated IDs are valid and distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id, err := shortid.New()
			require.NoError(t, err)
			assert.Len(t, id, shortid.Length)
			assert.True(t, shortid.Valid(id), "generated id %q failed validation", id)
			assert.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	})
}

func TestValid(t *testing.T) {
	t.Run("Success - accepts base62 of exact length", func(t *testing.T) {
		assert.True(t, shortid.Valid("aB3xY9Zk01"))
	})

	t.Run("Failure - rejects wrong length", func(t *testing.T) {
		assert.False(t, shortid.Valid(""))
		assert.False(t, shortid.Valid("abc"))
		assert.False(t, shortid.Valid("aB3xY9Zk01X"))
	})

	t.Run("Failure - rejects characters outside base62", func(t *testing.T) {
		assert.False(t, shortid.Valid("aB3xY9Zk0-"))
		assert.False(t, shortid.Valid("aB3xY9Zk0 "))
		assert.False(t, shortid.Valid("aB3xY9Zk0ñ"))
	})
}
