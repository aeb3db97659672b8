package closers

import (
	"context"
	"errors"
	"io"

	"github.com/pixpay/pacs008-client/libs/logging"
)

// Panic calls Close on the specified closer, panicking on error
func Panic(ctx context.Context, c io.Closer) {
	logger := logging.Logger(ctx, "closers.Panic")
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Error().Err(err).Msg("error attempting to close")
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// a request timeout surfaces here when the body was not fully read
			return
		}
		panic(err.Error())
	}
}
