package intake

import (
	"fmt"
	"os"
	"time"
)

// DefaultUploadDir is where product images land unless overridden by config.
// Files under ./public are served statically, so uploads end up reachable at
// /images/<assigned name>.
const DefaultUploadDir = "public/images"

// EnsureDir creates the upload directory, including missing parents. It is
// idempotent and meant to run once at startup; a failure here is fatal and the
// server must not start accepting requests.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory %s: %w", path, err)
	}
	return nil
}

// AssignFilename maps an incoming file's original name and the current server
// time to the on-disk name: "<unix millis>_<original name>". The original name
// is kept verbatim, extension and all. Two uploads of the same original name
// within the same millisecond collide; that weak uniqueness is accepted and
// relied upon by callers, so do not silently strengthen it.
func AssignFilename(originalName string, now time.Time) string {
	return fmt.Sprintf("%d_%s", now.UnixMilli(), originalName)
}
