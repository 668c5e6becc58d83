package domain

import "fmt"

// errorf собирает ErrInvalidArgument с пояснением.
func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
