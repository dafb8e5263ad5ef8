// SPDX-License-Identifier: MIT
// Package fraction: sentinel error set.
// Every constructor and arithmetic routine returns one of these sentinels,
// optionally wrapped with fmt.Errorf("ctx: %w", ErrX). Match with errors.Is.

package fraction

import "errors"

var (
	// ErrDivisionByZero is returned for a zero denominator at construction
	// and for division by a zero fraction or integer zero.
	ErrDivisionByZero = errors.New("fraction: division by zero")

	// ErrSyntax is returned by Parse / UnmarshalText on malformed text.
	ErrSyntax = errors.New("fraction: invalid syntax")
)
