// Package storage keeps uploaded dossier files on local disk or in an
// S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrNotExist is returned when a named object is not stored.
var ErrNotExist = errors.New("storage: object does not exist")

// Object is an open stored file. The caller must Close it.
type Object struct {
	io.ReadCloser
	Size        int64
	ContentType string
}

// Store saves, opens and deletes flat-named objects.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (*Object, error)
	Delete(ctx context.Context, name string) error
}

const unnamed = "unnamed_file"

// SanitizeFilename turns spaces into underscores and drops every rune that is
// not a letter, digit, '.', '_' or '-'.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' || r == '-' {
			return r
		}
		return -1
	}, name)
	if safe == "" {
		return unnamed
	}
	return safe
}

// ObjectName is the stored name of an upload: "<fileID>_<sanitized name>".
func ObjectName(fileID, filename string) string {
	return fileID + "_" + SanitizeFilename(filename)
}

// checkName rejects names that could escape the store's namespace.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("storage: invalid object name %q", name)
	}
	return nil
}
