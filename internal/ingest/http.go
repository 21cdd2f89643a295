package ingest

import (
	"context"
	"errors"

	"github.com/AngelCh415/FUNNEL_GO/internal/utils"
)

// GetWithRetry fetches url under the backoff policy. Client errors (4xx) are
// not retried.
func GetWithRetry(ctx context.Context, c HTTPClient, b utils.Backoff, source, url string) ([]byte, error) {
	var body []byte
	err := b.Do(ctx, func(int) error {
		var err error
		body, err = getBody(ctx, c, source, url)
		var se *StatusError
		if errors.As(err, &se) && !se.Temporary() {
			return utils.Permanent(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
