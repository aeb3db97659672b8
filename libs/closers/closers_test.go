package closers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestPanic(t *testing.T) {
	ctx := context.Background()

	ok := &closer{}
	assert.NotPanics(t, func() { Panic(ctx, ok) })
	assert.True(t, ok.closed)

	canceled := &closer{err: fmt.Errorf("read: %w", context.Canceled)}
	assert.NotPanics(t, func() { Panic(ctx, canceled) })

	broken := &closer{err: errors.New("broken pipe")}
	assert.PanicsWithValue(t, "broken pipe", func() { Panic(ctx, broken) })
}
