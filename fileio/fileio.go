// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fileio provides simple text oriented file operations: whole file
// reads and writes, line based reads, appends, copies and deletions.
// The operations are implemented in terms of a file.ObjectFS so that they
// may be used with stores other than the local filesystem. All failures
// are returned as an *IOError.
package fileio

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/file/localfs"
	"cloudeng.io/logging/ctxlog"
)

// FS is the filesystem interface required by Files.
type FS interface {
	file.ObjectFS
	OpenCtx(ctx context.Context, name string) (fs.File, error)
}

// Appender may be implemented by an FS that can append to a file in
// place. Files.Append reads and rewrites the whole file for an FS that
// does not implement it.
type Appender interface {
	Append(ctx context.Context, path string, perm fs.FileMode, data []byte) error
}

// MaxLineLength is the longest line that can be returned by ReadLines
// and ReadFirstLines.
const MaxLineLength = 1024 * 1024

// Files provides file operations on an FS.
type Files struct {
	fs      FS
	perm    fs.FileMode
	dirPerm fs.FileMode
}

// Option represents an option to New.
type Option func(o *Files)

// WithPerms sets the permissions used for newly created files and
// directories, the defaults are 0644 and 0755.
func WithPerms(filePerm, dirPerm fs.FileMode) Option {
	return func(o *Files) {
		o.perm = filePerm
		o.dirPerm = dirPerm
	}
}

// New returns a Files that uses the supplied FS.
func New(fsys FS, opts ...Option) *Files {
	f := &Files{fs: fsys, perm: 0644, dirPerm: 0755}
	for _, fn := range opts {
		fn(f)
	}
	return f
}

// Local returns a Files for the local filesystem. Appends to local files
// are made in place.
func Local(opts ...Option) *Files {
	return New(localFS{localfs.New()}, opts...)
}

// ReadString returns the contents of path.
func (f *Files) ReadString(ctx context.Context, path string) (string, error) {
	buf, err := f.fs.Get(ctx, path)
	if err != nil {
		return "", newIOError("read", path, err)
	}
	ctxlog.Logger(ctx).Debug("read", "path", path, "bytes", len(buf))
	return string(buf), nil
}

// WriteString writes content to path, creating or truncating it.
func (f *Files) WriteString(ctx context.Context, path, content string) error {
	if err := f.fs.Put(ctx, path, f.perm, []byte(content)); err != nil {
		return newIOError("write", path, err)
	}
	ctxlog.Logger(ctx).Debug("write", "path", path, "bytes", len(content))
	return nil
}

// Append appends content to path, creating it if it does not exist.
func (f *Files) Append(ctx context.Context, path, content string) error {
	if ap, ok := f.fs.(Appender); ok {
		if err := ap.Append(ctx, path, f.perm, []byte(content)); err != nil {
			return newIOError("append", path, err)
		}
		ctxlog.Logger(ctx).Debug("append", "path", path, "bytes", len(content))
		return nil
	}
	buf, err := f.fs.Get(ctx, path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return newIOError("append", path, err)
	}
	buf = append(buf, content...)
	if err := f.fs.Put(ctx, path, f.perm, buf); err != nil {
		return newIOError("append", path, err)
	}
	ctxlog.Logger(ctx).Debug("append", "path", path, "bytes", len(content))
	return nil
}

// ReadLines returns all of the lines in path with their line
// terminators removed.
func (f *Files) ReadLines(ctx context.Context, path string) ([]string, error) {
	return f.readLines(ctx, "read lines", path, -1)
}

// ReadFirstLines returns at most the first n lines in path.
func (f *Files) ReadFirstLines(ctx context.Context, path string, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	return f.readLines(ctx, "read first lines", path, n)
}

func (f *Files) readLines(ctx context.Context, op, path string, n int) ([]string, error) {
	rd, err := f.fs.OpenCtx(ctx, path)
	if err != nil {
		return nil, newIOError(op, path, err)
	}
	defer rd.Close()
	lines, err := scanLines(rd, n)
	if err != nil {
		return nil, newIOError(op, path, err)
	}
	ctxlog.Logger(ctx).Debug(op, "path", path, "lines", len(lines))
	return lines, nil
}

func scanLines(rd io.Reader, n int) ([]string, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	lines := []string{}
	for (n < 0 || len(lines) < n) && sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// WriteLines writes lines to path separated by newlines, with no
// trailing newline.
func (f *Files) WriteLines(ctx context.Context, path string, lines []string) error {
	if err := f.fs.Put(ctx, path, f.perm, []byte(strings.Join(lines, "\n"))); err != nil {
		return newIOError("write lines", path, err)
	}
	ctxlog.Logger(ctx).Debug("write lines", "path", path, "lines", len(lines))
	return nil
}

func (f *Files) stat(ctx context.Context, path string) (fs.FileInfo, error) {
	rd, err := f.fs.OpenCtx(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	return rd.Stat()
}

// Exists returns true if path exists and is a regular file.
func (f *Files) Exists(ctx context.Context, path string) bool {
	info, err := f.stat(ctx, path)
	return err == nil && info.Mode().IsRegular()
}

// Size returns the size of path in bytes.
func (f *Files) Size(ctx context.Context, path string) (int64, error) {
	info, err := f.stat(ctx, path)
	if err != nil {
		return 0, newIOError("size", path, err)
	}
	return info.Size(), nil
}

// MkdirAll creates path and any missing parent directories.
func (f *Files) MkdirAll(ctx context.Context, path string) error {
	if err := f.fs.EnsurePrefix(ctx, path, f.dirPerm); err != nil {
		return newIOError("mkdir", path, err)
	}
	ctxlog.Logger(ctx).Debug("mkdir", "path", path)
	return nil
}

// Copy copies src to dst, preserving src's permissions, and returns
// the number of bytes copied.
func (f *Files) Copy(ctx context.Context, src, dst string) (int64, error) {
	rd, err := f.fs.OpenCtx(ctx, src)
	if err != nil {
		return 0, newIOError("copy", src, err)
	}
	defer rd.Close()
	info, err := rd.Stat()
	if err != nil {
		return 0, newIOError("copy", src, err)
	}
	if info.IsDir() {
		return 0, newIOError("copy", src, fs.ErrInvalid)
	}
	buf, err := io.ReadAll(rd)
	if err != nil {
		return 0, newIOError("copy", src, err)
	}
	if err := f.fs.Put(ctx, dst, info.Mode().Perm(), buf); err != nil {
		return 0, newIOError("copy", dst, err)
	}
	ctxlog.Logger(ctx).Debug("copy", "src", src, "dst", dst, "bytes", len(buf))
	return int64(len(buf)), nil
}

// Delete deletes path.
func (f *Files) Delete(ctx context.Context, path string) error {
	if err := f.fs.Delete(ctx, path); err != nil {
		return newIOError("delete", path, err)
	}
	ctxlog.Logger(ctx).Debug("delete", "path", path)
	return nil
}

// DeleteAll attempts to delete all of the specified paths and returns
// an errors.M containing an *IOError for each one that failed.
func (f *Files) DeleteAll(ctx context.Context, paths ...string) error {
	errs := &errors.M{}
	for _, p := range paths {
		errs.Append(f.Delete(ctx, p))
	}
	return errs.Err()
}
