package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	t.Run("value present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(7))

		userID, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("value missing", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDCtxKey, "7")

		_, ok := GetUserIDFromContext(ctx)
		assert.False(t, ok)
	})
}
