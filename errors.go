package montecarlo

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidConfiguration is returned by every operation that rejects a
// configuration value. Use errors.Is to test for it.
var ErrInvalidConfiguration = errors.New("invalid configuration")

func invalidConfiguration(hint string, format string, args ...any) error {
	err := errors.Wrapf(ErrInvalidConfiguration, format, args...)
	return errors.WithHint(err, hint)
}
