package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthToken(t *testing.T) {
	ctx := context.Background()
	_, ok := AuthToken(ctx)
	assert.False(t, ok)

	assert.Equal(t, ctx, WithAuthToken(ctx, ""))

	token, ok := AuthToken(WithAuthToken(ctx, "secret"))
	assert.True(t, ok)
	assert.EqualValues(t, "secret", token)
}
