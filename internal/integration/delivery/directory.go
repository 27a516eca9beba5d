// Package delivery hands finished report exports to their consumer.
package delivery

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
)

// Directory delivers exports as files in a local output directory.
// It serves both as file delivery and as print surface.
type Directory struct {
	dir string
}

// NewDirectory creates a directory delivery, creating dir if needed.
func NewDirectory(dir string) (*Directory, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &Directory{dir: dir}, nil
}

// Deliver writes the file into the directory.
func (d *Directory) Deliver(ctx context.Context, filename, contentType string, content []byte) error {
	target := d.path(filename)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// Open creates the document file. Nothing is written until the caller writes.
func (d *Directory) Open(ctx context.Context, name string) (io.WriteCloser, error) {
	f, err := os.Create(d.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open print surface: %w", err)
	}
	return f, nil
}

// Path returns where a delivered file with this name is stored.
func (d *Directory) Path(filename string) string {
	return d.path(filename)
}

func (d *Directory) path(filename string) string {
	return filepath.Join(d.dir, filepath.Base(filename))
}

var (
	_ adapter.FileDelivery = (*Directory)(nil)
	_ adapter.PrintSurface = (*Directory)(nil)
)
