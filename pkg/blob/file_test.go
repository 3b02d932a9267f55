package blob

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beaconkit/beaconkit/pkg/payload"
)

func TestWriteReadFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "event.blob")

	p := samplePayload()
	assert.NoError(t, WriteFile(path, p))

	rt, err := ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, p.Equal(rt))
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "event.blob")

	assert.NoError(t, WriteFile(path, samplePayload()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, WriteFile(filepath.Join(dir, "event.blob"), samplePayload()))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "event.blob", entries[0].Name())
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "event.blob")

	first := payload.New()
	first.Add("e", "pv")
	assert.NoError(t, WriteFile(path, first))

	second := payload.New()
	second.Add("e", "se")
	assert.NoError(t, WriteFile(path, second))

	rt, err := ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, second.Equal(rt))
}

func TestReadFile_NonexistentPath(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.blob"))
	assert.Error(t, err)
}

func TestReadFile_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.blob")
	assert.NoError(t, os.WriteFile(path, []byte("not a blob"), 0644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}
