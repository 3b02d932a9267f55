package blob

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beaconkit/beaconkit/pkg/payload"
)

// WriteFile serializes the payload and writes it to path, creating parent
// directories as needed. The blob is written to a temp file in the same
// directory and renamed into place, so a reader never observes a partial
// file. Concurrent writers to the same path race; the last rename wins.
func WriteFile(path string, p *payload.Payload) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("blob: failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".blob-*")
	if err != nil {
		return fmt.Errorf("blob: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("blob: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("blob: failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("blob: failed to rename into %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and deserializes the blob stored at path.
func ReadFile(path string) (*payload.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blob: failed to read %s: %w", path, err)
	}
	return Unmarshal(data)
}
