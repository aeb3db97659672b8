package context

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWrap_ValuesFromWrappedCancellationFromOuter(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.WithValue(context.Background(), EnvironmentCTXKey, "test"))
	outer, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ctx := Wrap(parent, outer)
	cancelParent()

	env, err := GetStringFromContext(ctx, EnvironmentCTXKey)
	assert.NoError(t, err)
	assert.Equal(t, "test", env)
	assert.NoError(t, ctx.Err(), "cancelling the wrapped context must not cancel the wrapper")
}
