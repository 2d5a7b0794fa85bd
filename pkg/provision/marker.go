package provision

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MarkerPrefix is the fixed prefix for install marker file names.
const MarkerPrefix = "solsense-setup-"

// Store is the durable yes/no checkpoint behind the gate: has the one-time
// setup already succeeded for this principal? Implementations must treat
// absence as "never attempted or previously failed".
type Store interface {
	// IsProvisioned reports whether setup previously succeeded for the user.
	IsProvisioned(username string) bool

	// MarkProvisioned records a successful setup pass. Idempotent.
	MarkProvisioned(username string) error

	// Clear removes the record, forcing the next run to re-provision.
	Clear(username string) error

	// Path returns the backing location for display purposes.
	Path(username string) string
}

// FileStore backs the gate with a marker file in a temp-style directory.
// Only the file's existence is the signal; the contents are a receipt for
// human inspection and are never parsed.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at the platform temp directory.
func NewFileStore() *FileStore {
	return &FileStore{dir: os.TempDir()}
}

// NewFileStoreWithDir creates a FileStore rooted at a custom directory (for testing).
func NewFileStoreWithDir(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the marker file path for the user.
func (s *FileStore) Path(username string) string {
	return filepath.Join(s.dir, MarkerPrefix+sanitizeUser(username))
}

// IsProvisioned reports whether the marker file exists.
func (s *FileStore) IsProvisioned(username string) bool {
	_, err := os.Stat(s.Path(username))
	return err == nil
}

// MarkProvisioned writes the marker file. Overwrites any existing marker,
// so repeated calls are safe.
func (s *FileStore) MarkProvisioned(username string) error {
	receipt := fmt.Sprintf("run=%s\ncompleted=%s\npackages=%d\n",
		uuid.NewString(),
		time.Now().UTC().Format(time.RFC3339),
		len(manifest),
	)

	if err := os.WriteFile(s.Path(username), []byte(receipt), 0644); err != nil {
		return fmt.Errorf("failed to write install marker: %w", err)
	}
	return nil
}

// Clear removes the marker file. Removing a marker that does not exist is
// not an error.
func (s *FileStore) Clear(username string) error {
	err := os.Remove(s.Path(username))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove install marker: %w", err)
	}
	return nil
}

// CurrentUser returns the invoking user's name for marker scoping.
// Falls back to environment variables, then a fixed default, so the gate
// still works in stripped-down environments.
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "default"
}

// sanitizeUser strips path separators and other characters that are not
// safe in a file name (Windows usernames may carry a domain prefix).
func sanitizeUser(username string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '-'
		}
		return r
	}, username)
}
