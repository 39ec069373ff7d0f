package service

import (
	"fmt"
	"time"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Page size defaults and the upper bound applied to every paginated read.
const (
	DefaultHistoryLimit     = 10
	DefaultFeedLimit        = 20
	DefaultLeaderboardLimit = 10
	MaxPageLimit            = 100
)

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

// normalizePage applies def when limit is not positive, clamps it to
// MaxPageLimit and rejects negative offsets.
func normalizePage(limit, offset, def int) (int, int, error) {
	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: offset must not be negative", model.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = def
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return limit, offset, nil
}
