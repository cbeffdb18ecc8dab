package poseidon

import "github.com/pkg/errors"

var (
	// ErrConfiguration is returned for malformed or dimension-mismatched parameters.
	ErrConfiguration = errors.New("invalid permutation configuration")
	// ErrArity is returned when a permutation or hash is called with the wrong
	// number of inputs.
	ErrArity = errors.New("wrong number of permutation inputs")
)

func configError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}
