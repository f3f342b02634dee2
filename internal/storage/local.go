package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FallbackDir is used when the configured upload directory cannot be created.
const FallbackDir = "uploads"

// Local stores objects as files in a single directory.
type Local struct {
	dir string
}

// NewLocal prepares dir, falling back to FallbackDir when dir cannot be
// created (e.g. /data on a developer machine).
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn().Err(err).Str("dir", dir).Str("fallback", FallbackDir).Msg("could not create upload dir")
		dir = FallbackDir
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create upload dir: %w", err)
		}
	}
	return &Local{dir: dir}, nil
}

// Dir is the directory objects are written to.
func (l *Local) Dir() string {
	return l.dir
}

// Save writes r to name, replacing any existing file.
func (l *Local) Save(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if err := checkName(name); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", name, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("storage: write %s: %w", name, err)
	}
	return f.Close()
}

// Open returns the file stored under name.
func (l *Local) Open(_ context.Context, name string) (*Object, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("storage: open %s: %w", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("storage: stat %s: %w", name, err)
	}

	return &Object{
		ReadCloser:  f,
		Size:        info.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(name)),
	}, nil
}

// Delete removes name. A missing file is not an error.
func (l *Local) Delete(_ context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %w", name, err)
	}
	return nil
}
