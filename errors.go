package argon2

import (
	"context"
	"errors"
	"fmt"

	"github.com/mooncloak/argon2/internal/core"
)

// Sentinel error kinds a caller can match with errors.Is. Hash always
// wraps one of these.
var (
	// ErrInvalidParameter means a parameter was out of range: tau, t, p,
	// an unsupported version, or an unknown variant. m is never rejected;
	// values below 8*p blocks are raised to that floor. The working memory
	// was never allocated, so nothing needed zeroizing.
	ErrInvalidParameter = errors.New("argon2: invalid parameter")

	// ErrComputationFailure means a fill worker failed unexpectedly. The
	// working memory has already been zeroized.
	ErrComputationFailure = errors.New("argon2: computation failed")

	// ErrCancelled means the context passed to HashContext was canceled
	// at a slice barrier. The working memory has already been zeroized.
	ErrCancelled = errors.New("argon2: cancelled")
)

// classify maps an internal core error to one of the sentinel kinds
// above, wrapping it with %w so callers can still errors.As to the
// underlying detail.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var invalid *core.InvalidParameterError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrInvalidParameter, invalid.Error())
	}

	var paniced *core.PanicError
	if errors.As(err, &paniced) {
		return fmt.Errorf("%w: %s", ErrComputationFailure, paniced.Error())
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrCancelled, err.Error())
	}

	return fmt.Errorf("%w: %s", ErrComputationFailure, err.Error())
}
