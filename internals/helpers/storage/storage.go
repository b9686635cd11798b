// Local blob store. Files are opaque artifacts addressed by a relative path;
// a sha256 digest over the stored bytes is returned so callers can persist it
// for integrity checks.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

const maxUploadSize = int64(5 * 1024 * 1024)

type LocalStore struct {
	BaseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &LocalStore{BaseDir: baseDir}
}

// Save streams the uploaded file under folder/ and returns its relative path
// plus the sha256 hex digest of the stored bytes.
func (s *LocalStore) Save(folder string, fh *multipart.FileHeader) (string, string, error) {
	if fh.Size > maxUploadSize {
		return "", "", fmt.Errorf("file exceeds %dMB limit", maxUploadSize/(1024*1024))
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	rel := UniqueFilename(folder, fh.Filename)
	abs := filepath.Join(s.BaseDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", "", fmt.Errorf("mkdir: %w", err)
	}

	dst, err := os.Create(abs)
	if err != nil {
		return "", "", fmt.Errorf("create %s: %w", abs, err)
	}
	defer dst.Close()

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(dst, h), src); err != nil {
		_ = os.Remove(abs)
		return "", "", fmt.Errorf("write %s: %w", abs, err)
	}

	return rel, hex.EncodeToString(h.Sum(nil)), nil
}

// SaveBytes writes an already-materialized artifact (e.g. a re-encoded image).
func (s *LocalStore) SaveBytes(folder, filename string, data []byte) (string, string, error) {
	rel := UniqueFilename(folder, filename)
	abs := filepath.Join(s.BaseDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", "", fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", abs, err)
	}
	sum := sha256.Sum256(data)
	return rel, hex.EncodeToString(sum[:]), nil
}

// Delete removes an artifact. A missing file is not an error; the reference
// may already have been cleaned up.
func (s *LocalStore) Delete(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.BaseDir, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ReleaseOld deletes a replaced artifact after its reference swap has been
// persisted. Failures are logged, never propagated, since the new reference is
// already committed.
func (s *LocalStore) ReleaseOld(rel string) {
	if rel == "" {
		return
	}
	if err := s.Delete(rel); err != nil {
		log.WithFields(log.Fields{"path": rel, "err": err}).Warn("failed to release replaced file")
	}
}

// ✅ Unique name: folder/YYYYMMDD-uuid-sanitized
func UniqueFilename(folder, original string) string {
	stamp := time.Now().Format("20060102")
	safe := unsafeChars.ReplaceAllString(original, "_")
	return filepath.Join(folder, fmt.Sprintf("%s-%s-%s", stamp, uuid.New().String(), safe))
}
