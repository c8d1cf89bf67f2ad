package alerts

import (
	"crypto/sha1" //nolint:gosec // dedup fingerprint, not a security boundary
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// SeenIndex remembers which notification texts were already processed,
// keyed by content hash and persisted across restarts so a redeploy
// does not re-record the whole feed.
type SeenIndex struct {
	path string

	mu     sync.Mutex
	hashes map[string]struct{}
}

func NewSeenIndex(path string) (*SeenIndex, error) {
	idx := &SeenIndex{
		path:   path,
		hashes: make(map[string]struct{}),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var stored []string
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	for _, h := range stored {
		idx.hashes[h] = struct{}{}
	}

	return idx, nil
}

// MarkSeen records the text and reports whether it was new. The index
// file is rewritten before the call returns, so a crash right after
// never replays an already-counted purchase.
func (s *SeenIndex) MarkSeen(text string) (isNew bool, err error) {
	key := fingerprint(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.hashes[key]; ok {
		return false, nil
	}

	s.hashes[key] = struct{}{}

	if err := s.flushLocked(); err != nil {
		delete(s.hashes, key)
		return false, err
	}

	return true, nil
}

func (s *SeenIndex) flushLocked() error {
	stored := make([]string, 0, len(s.hashes))
	for h := range s.hashes {
		stored = append(stored, h)
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "seen-*.json")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("tmp.Write: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("tmp.Close: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}

func fingerprint(text string) string {
	sum := sha1.Sum([]byte(text)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
