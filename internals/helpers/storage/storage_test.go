package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBytesRecordsContentHash(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	content := []byte("registration certificate bytes")
	rel, digest, err := store.SaveBytes("charity_docs", "cert.pdf", content)
	require.NoError(t, err)

	want := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(want[:]), digest)

	stored, err := os.ReadFile(filepath.Join(store.BaseDir, rel))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestDeleteMissingFileIsNotAnError(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	assert.NoError(t, store.Delete("profile_images/nope.webp"))
}

func TestReleaseOldRemovesReplacedArtifact(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	oldRel, _, err := store.SaveBytes("profile_images", "old.webp", []byte("old"))
	require.NoError(t, err)
	newRel, _, err := store.SaveBytes("profile_images", "new.webp", []byte("new"))
	require.NoError(t, err)

	// reference swap committed first, then the old artifact is released
	store.ReleaseOld(oldRel)

	_, err = os.Stat(filepath.Join(store.BaseDir, oldRel))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(store.BaseDir, newRel))
	assert.NoError(t, err)
}

func TestUniqueFilenameSanitizes(t *testing.T) {
	name := UniqueFilename("charity_docs", "my doc (final)?.pdf")
	assert.True(t, strings.HasPrefix(name, "charity_docs"+string(filepath.Separator)))
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "?")
	assert.NotContains(t, name, "(")

	// two uploads of the same filename never collide
	other := UniqueFilename("charity_docs", "my doc (final)?.pdf")
	assert.NotEqual(t, name, other)
}
