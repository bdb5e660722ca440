package storage

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Namespace is the path segment all uploaded assets live under, for both the
// local and the object-storage backends.
const Namespace = "uploads"

// Payload is a single file to be stored. SuggestedName is the client's
// original filename and is informational only; the stored name is always
// generated.
type Payload struct {
	Data          []byte
	ContentType   string
	SuggestedName string
}

// Uploader writes a payload to a storage backend and returns the URL the
// file is served under. Implementations must be safe for concurrent use.
type Uploader interface {
	Upload(ctx context.Context, p Payload) (string, error)
}

// ObjectName generates a collision-resistant filename for a payload:
// <epoch-millis>-<random-int>.<ext>, extension taken from the content type's
// subtype and falling back to jpg for unrecognized or missing types.
func ObjectName(contentType string) string {
	ext := "jpg"
	if _, sub, ok := strings.Cut(contentType, "/"); ok && sub != "" {
		ext = sub
	}
	return fmt.Sprintf("%d-%d.%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}
