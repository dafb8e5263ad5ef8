// SPDX-License-Identifier: MIT

package fraction

import (
	"fmt"
	"strconv"
	"strings"
)

const opParse = "Parse"

// fractionErrorf wraps err with an operation tag, preserving it for errors.Is.
func fractionErrorf(tag string, err error) error {
	return fmt.Errorf("fraction.%s: %w", tag, err)
}

// Parse reads "n" or "n/d" (surrounding spaces allowed, sign on either part)
// and returns the canonical fraction.
//
// Errors:
//   - ErrSyntax for empty input or a non-integer part.
//   - ErrDivisionByZero for d == 0.
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, fractionErrorf(opParse, ErrSyntax)
	}
	numText, denText, hasDen := strings.Cut(s, "/")

	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction.%s(%q): %w", opParse, s, ErrSyntax)
	}
	if !hasDen {
		return FromInt(num), nil
	}

	den, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction.%s(%q): %w", opParse, s, ErrSyntax)
	}

	return New(num, den)
}

// MarshalText implements encoding.TextMarshaler using String.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
// On error f is left unchanged.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}
