// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fileio

import (
	"io/fs"

	"cloudeng.io/errors"
)

// IOError records a failed file operation. Use errors.Is with the
// fs package errors, eg. fs.ErrNotExist, to determine the cause.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newIOError(op, path string, err error) error {
	// Avoid repeating the path when err is already an fs.PathError.
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// IsNotExist returns true if err indicates that a file does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsPermissionError returns true if err indicates a permissions failure.
func IsPermissionError(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
