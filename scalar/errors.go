// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Quo when the divisor is zero.
var ErrDivisionByZero = errors.New("scalar: division by zero")

func scalarErrorf(tag string, err error) error {
	return fmt.Errorf("scalar.%s: %w", tag, err)
}
