// Copyright 2026 The Insitu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small wrappers around the standard errors
// package that log errors as they are returned, so that call sites can
// both report and propagate in one expression.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error with the given text, per [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Newf returns a formatted error, per [fmt.Errorf].
func Newf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target, per [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Log takes the given error and logs it with the calling location if it is
// non-nil, and returns it either way. Intended for inline use on error
// returns: return errors.Log(doSomething()).
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "from", caller(2))
	}
	return err
}

// Log1 is a version of [Log] for functions returning a value and an error.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "from", caller(2))
	}
	return v
}

// Must panics if the given error is non-nil; for errors that indicate
// programming mistakes rather than runtime conditions.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// caller returns the file:line of the caller the given number of
// stack levels up.
func caller(level int) string {
	_, file, line, ok := runtime.Caller(level)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
