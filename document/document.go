package document

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
)

const (
	AppName  = "scribe"
	fileMode = 0o644
)

// ErrNoPath is returned by Save when the document has never been given a
// path. Callers prompt for one and use SaveAs.
var ErrNoPath = errors.New("document has no path")

// Document is the file currently open in the editor.
type Document struct {
	ID   uuid.UUID
	Path string

	// digest of the bytes last read from or written to Path.
	digest [sha256.Size]byte
	synced bool
}

// New returns an untitled document, or one bound to path without reading it.
func New(path string) *Document {
	return &Document{ID: uuid.New(), Path: path}
}

// Title is the window title: "scribe" or "scribe - <path>".
func (d *Document) Title() string {
	if d.Path == "" {
		return AppName
	}
	return AppName + " - " + d.Path
}

func (d *Document) HasPath() bool { return d.Path != "" }

// Open reads path verbatim and binds the document to it. On error the
// document is left unchanged.
func (d *Document) Open(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path chosen by the user
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	d.ID = uuid.New()
	d.Path = path
	d.remember(data)
	return string(data), nil
}

// Save writes text verbatim to the document's path.
func (d *Document) Save(text string) error {
	if d.Path == "" {
		return ErrNoPath
	}
	return d.write(d.Path, text)
}

// SaveAs writes text to path and rebinds the document to it.
func (d *Document) SaveAs(path, text string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := d.write(path, text); err != nil {
		return err
	}
	d.Path = path
	return nil
}

// Reset starts a fresh document bound to path. Nothing is written until the
// first save.
func (d *Document) Reset(path string) {
	d.ID = uuid.New()
	d.Path = path
	d.synced = false
}

// ChangedOnDisk reports whether the file at Path differs from what was last
// read or written. A missing file counts as changed.
func (d *Document) ChangedOnDisk() (bool, error) {
	if d.Path == "" || !d.synced {
		return false, nil
	}
	data, err := os.ReadFile(d.Path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", d.Path, err)
	}
	return sha256.Sum256(data) != d.digest, nil
}

func (d *Document) write(path, text string) error {
	data := []byte(text)
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	d.remember(data)
	return nil
}

func (d *Document) remember(data []byte) {
	d.digest = sha256.Sum256(data)
	d.synced = true
}
