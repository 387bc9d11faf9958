package docview

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Payload file names and extension.
const (
	// ManifestName is the manifest payload listing every library.
	ManifestName = "library_list"

	// SearchIndexName is the payload mapping addresses to kinds.
	SearchIndexName = "index"

	// DefaultExtension is appended to payload names when none is configured.
	DefaultExtension = ".json"
)

// PayloadPath returns the path of the payload backing the page at loc, for
// example "dart-core.String.json".
func PayloadPath(loc Location, ext string) string {
	return loc.WithoutAnchor() + ext
}

// Fetcher retrieves raw payload text by path. The model depends only on this
// signature, not on the storage medium.
type Fetcher interface {
	// Fetch returns the payload stored at path.
	// Returns ENOTFOUND if there is no payload at path.
	Fetch(ctx context.Context, path string) (string, error)
}

// Payload is one stored documentation file.
type Payload struct {
	ID          string
	Path        string
	Content     string
	ContentHash string
	PackedAt    time.Time
}

// Validate returns an error if the payload contains invalid fields.
func (p *Payload) Validate() error {
	if p.Path == "" {
		return Errorf(EINVALID, "payload path required")
	}
	if err := ValidatePath(p.Path); err != nil {
		return err
	}
	return nil
}

// ValidatePath rejects absolute paths and paths escaping their root.
func ValidatePath(path string) error {
	if strings.HasPrefix(path, "/") {
		return Errorf(EINVALID, "payload path %q is absolute", path)
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return Errorf(EINVALID, "payload path %q escapes its root", path)
		}
	}
	return nil
}

// PayloadLister enumerates the payloads of a documentation set.
type PayloadLister interface {
	// Paths returns every payload path in sorted order.
	Paths(ctx context.Context) ([]string, error)
}

// PayloadWriter stores payloads.
type PayloadWriter interface {
	// PutPayload stores the payload, replacing any payload at the same path.
	PutPayload(ctx context.Context, p *Payload) error
}

// PayloadSource is a documentation set that can be enumerated and read.
type PayloadSource interface {
	Fetcher
	PayloadLister
}

// CopyPayloads copies every payload of src into dst in path order and
// returns how many were copied. progress, if not nil, is called after each
// payload. It stops at the first error.
func CopyPayloads(ctx context.Context, src PayloadSource, dst PayloadWriter, progress func(path string, n, total int)) (int, error) {
	paths, err := src.Paths(ctx)
	if err != nil {
		return 0, err
	}
	for i, path := range paths {
		content, err := src.Fetch(ctx, path)
		if err != nil {
			return i, fmt.Errorf("read %s: %w", path, err)
		}
		if err := dst.PutPayload(ctx, &Payload{Path: path, Content: content}); err != nil {
			return i, fmt.Errorf("write %s: %w", path, err)
		}
		if progress != nil {
			progress(path, i+1, len(paths))
		}
	}
	return len(paths), nil
}

// PayloadFilter represents a filter for FindPayloads.
type PayloadFilter struct {
	// PathPrefix restricts results to paths starting with the prefix.
	PathPrefix *string

	Offset int
	Limit  int
}
