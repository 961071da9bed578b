package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "abs:dashboard:stats", generateKey("abs", "dashboard", "stats"))
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	c, err := NewRedisCache(ctx, "127.0.0.1:1", "abs")
	assert.Error(t, err)
	assert.Nil(t, c)
}
