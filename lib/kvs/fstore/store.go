package fstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/espeer/zep-kvs/lib/kvs"
)

const (
	// tempPrefix marks in-flight write artifacts. Keys starting with this
	// prefix are rejected, so temporary files can never collide with a
	// real key or leak into key listings.
	tempPrefix = ".tmp_"

	// staleAfter is how old a leftover temporary artifact must be before
	// the construction-time sweep reclaims it. The generous margin keeps
	// the sweep from racing a write still in flight in another process.
	staleAfter = 24 * time.Hour

	dirPerm  = 0o755
	filePerm = 0o644
)

type storeImpl struct {
	path string   // the store directory, one file per key
	dir  *os.File // open handle on path, used to sync directory metadata
}

// New creates a directory-backed store at <root>/<Namespace>/<Application>,
// creating the directory path if absent. Leftover temporary artifacts older
// than 24 hours are swept best-effort. The returned store keeps an open
// handle on the directory for the durability syncs; Close releases it.
func New(root string, id kvs.Identity) (kvs.IBackingStore, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	path := filepath.Join(root, id.Namespace, id.Application)
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return nil, kvs.NewIOError(err, path)
	}

	sweepStale(path)

	dir, err := os.Open(path)
	if err != nil {
		return nil, kvs.NewIOError(err, path)
	}
	if err := syncDir(dir); err != nil {
		_ = dir.Close()
		return nil, kvs.NewIOError(err, path)
	}

	return &storeImpl{path: path, dir: dir}, nil
}

// sweepStale removes abandoned temporary write artifacts left by processes
// that crashed mid-write. Only regular files with the reserved prefix and a
// modification time older than staleAfter are touched; anything younger may
// belong to a write still in flight. All failures are ignored - the sweep is
// purely an accumulation guard.
func sweepStale(path string) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-staleAfter)
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasPrefix(entry.Name(), tempPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		_ = os.Remove(filepath.Join(path, entry.Name()))
	}
}

// validateKey rejects keys the filesystem cannot represent as a single
// filename inside the store directory. Surfacing this as a clear validation
// error beats a raw OS error, and it closes the directory-escape hole of
// keys like "../x".
func validateKey(key string) error {
	switch {
	case key == "":
		return kvs.NewInvalidKeyError(key, "empty keys cannot be mapped to a filename")
	case key == "." || key == "..":
		return kvs.NewInvalidKeyError(key, "relative path components are not valid keys")
	case strings.ContainsAny(key, "/\\\x00"):
		return kvs.NewInvalidKeyError(key, "path separators and NUL are not valid in keys")
	case strings.HasPrefix(key, tempPrefix):
		return kvs.NewInvalidKeyError(key, "the temporary artifact prefix is reserved")
	default:
		return nil
	}
}

// syncDir forces directory metadata (renames, deletes) to stable storage.
// Windows does not support syncing directory handles; the registry backend
// is the durable store there.
func syncDir(dir *os.File) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return dir.Sync()
}

// --------------------------------------------------------------------------
// Interface Methods (docu see kvs/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, kvs.NewIOError(err, s.path)
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		// Entries that cannot be inspected are skipped rather than
		// aborting the whole listing.
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), tempPrefix) {
			continue
		}
		keys = append(keys, entry.Name())
	}
	return keys, nil
}

func (s *storeImpl) Store(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	// Write to a uniquely named temporary file first. Renaming within the
	// same directory is atomic on the filesystems this store targets, so
	// the visible file for a key is always a complete prior or complete
	// new value, never a partial one. A temporary file left behind by a
	// failure is reclaimed by the next construction-time sweep.
	tmp := filepath.Join(s.path, tempPrefix+uuid.NewString())
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return kvs.NewIOError(err, tmp)
	}
	if _, err := f.Write(value); err != nil {
		_ = f.Close()
		return kvs.NewIOError(err, tmp)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return kvs.NewIOError(err, tmp)
	}
	if err := f.Close(); err != nil {
		return kvs.NewIOError(err, tmp)
	}

	target := filepath.Join(s.path, key)
	if err := os.Rename(tmp, target); err != nil {
		return kvs.NewIOError(err, target)
	}

	// Sync the directory itself so the rename survives a crash.
	if err := syncDir(s.dir); err != nil {
		return kvs.NewIOError(err, s.path)
	}
	return nil
}

func (s *storeImpl) Retrieve(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	path := filepath.Join(s.path, key)
	value, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, kvs.NewIOError(err, path)
	}
	return value, true, nil
}

func (s *storeImpl) Remove(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	path := filepath.Join(s.path, key)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return kvs.NewIOError(err, path)
	}
	if err := syncDir(s.dir); err != nil {
		return kvs.NewIOError(err, s.path)
	}
	return nil
}

func (s *storeImpl) Close() error {
	if err := s.dir.Close(); err != nil {
		return kvs.NewIOError(err, s.path)
	}
	return nil
}
