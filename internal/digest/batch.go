package digest

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/signet/internal/constants"
	"github.com/mrz1836/signet/internal/errors"
)

// HashAll hashes every message concurrently and returns the digests in input
// order. The first failure cancels the remaining calls and is returned; no
// partial result is returned alongside an error.
func HashAll(ctx context.Context, p Provider, messages []string) ([]string, error) {
	out := make([]string, len(messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MaxConcurrentDigests)

	for i, msg := range messages {
		g.Go(func() error {
			sum, err := Hash(gctx, p, msg)
			if err != nil {
				return errors.Wrapf(err, "message %d", i)
			}
			out[i] = sum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
