// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fileio

import (
	"context"
	"io/fs"
	"os"

	"cloudeng.io/file/localfs"
)

// localFS adds in place appends to localfs.T.
type localFS struct {
	*localfs.T
}

func (localFS) Append(_ context.Context, path string, perm fs.FileMode, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var local = Local()

// ReadString calls Local().ReadString.
func ReadString(ctx context.Context, path string) (string, error) {
	return local.ReadString(ctx, path)
}

// WriteString calls Local().WriteString.
func WriteString(ctx context.Context, path, content string) error {
	return local.WriteString(ctx, path, content)
}

// Append calls Local().Append.
func Append(ctx context.Context, path, content string) error {
	return local.Append(ctx, path, content)
}

// ReadLines calls Local().ReadLines.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	return local.ReadLines(ctx, path)
}

// ReadFirstLines calls Local().ReadFirstLines.
func ReadFirstLines(ctx context.Context, path string, n int) ([]string, error) {
	return local.ReadFirstLines(ctx, path, n)
}

// WriteLines calls Local().WriteLines.
func WriteLines(ctx context.Context, path string, lines []string) error {
	return local.WriteLines(ctx, path, lines)
}

// Exists calls Local().Exists.
func Exists(ctx context.Context, path string) bool {
	return local.Exists(ctx, path)
}

// Size calls Local().Size.
func Size(ctx context.Context, path string) (int64, error) {
	return local.Size(ctx, path)
}

// MkdirAll calls Local().MkdirAll.
func MkdirAll(ctx context.Context, path string) error {
	return local.MkdirAll(ctx, path)
}

// Copy calls Local().Copy.
func Copy(ctx context.Context, src, dst string) (int64, error) {
	return local.Copy(ctx, src, dst)
}

// Delete calls Local().Delete.
func Delete(ctx context.Context, path string) error {
	return local.Delete(ctx, path)
}
