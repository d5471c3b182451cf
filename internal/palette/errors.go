package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCount: a palette needs at least one color.
var ErrInvalidCount = errors.New("color count must be at least 1")

// UnknownAlgorithmError: the requested algorithm is not registered.
type UnknownAlgorithmError struct {
	Name  string
	Valid []string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown algorithm: %s (valid algorithms: %s)",
		e.Name, strings.Join(e.Valid, ", "))
}
