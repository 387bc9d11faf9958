package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/docview"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ docview.Fetcher       = (*PayloadService)(nil)
	_ docview.PayloadLister = (*PayloadService)(nil)
	_ docview.PayloadWriter = (*PayloadService)(nil)
)

// PayloadService stores payloads by path and serves them back as a
// docview.Fetcher.
type PayloadService struct {
	db *DB
}

// NewPayloadService creates a new PayloadService.
func NewPayloadService(db *DB) *PayloadService {
	return &PayloadService{db: db}
}

// PutPayload stores p, replacing the payload at the same path. A payload
// whose content hash is unchanged is left as is. On return p carries the
// stored ID, hash and packing time.
func (s *PayloadService) PutPayload(ctx context.Context, p *docview.Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.ContentHash = hashContent(p.Content)

	existing, err := s.FindPayloadByPath(ctx, p.Path)
	switch {
	case docview.ErrorCode(err) == docview.ENOTFOUND:
		p.ID = uuid.New().String()
		p.PackedAt = time.Now().UTC().Truncate(time.Second)
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO payloads (id, path, content, content_hash, packed_at)
			VALUES (?, ?, ?, ?, ?)
		`, p.ID, p.Path, p.Content, p.ContentHash, p.PackedAt.Format(time.RFC3339))
		return err
	case err != nil:
		return err
	}

	p.ID = existing.ID
	if existing.ContentHash == p.ContentHash {
		p.PackedAt = existing.PackedAt
		return nil
	}
	p.PackedAt = time.Now().UTC().Truncate(time.Second)
	_, err = s.db.ExecContext(ctx, `
		UPDATE payloads
		SET content = ?, content_hash = ?, packed_at = ?
		WHERE id = ?
	`, p.Content, p.ContentHash, p.PackedAt.Format(time.RFC3339), p.ID)
	return err
}

// FindPayloadByPath retrieves a payload by path.
// Returns ENOTFOUND if there is no payload at path.
func (s *PayloadService) FindPayloadByPath(ctx context.Context, path string) (*docview.Payload, error) {
	var p docview.Payload
	var packedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, path, content, content_hash, packed_at
		FROM payloads
		WHERE path = ?
	`, path).Scan(&p.ID, &p.Path, &p.Content, &p.ContentHash, &packedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docview.Errorf(docview.ENOTFOUND, "payload %s not found", path)
	}
	if err != nil {
		return nil, err
	}

	if p.PackedAt, err = parseRFC3339(packedAt, "packed_at"); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPayloads retrieves payloads matching the filter in path order.
func (s *PayloadService) FindPayloads(ctx context.Context, filter docview.PayloadFilter) ([]*docview.Payload, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, path, content, content_hash, packed_at FROM payloads WHERE 1=1")
	if filter.PathPrefix != nil {
		query.WriteString(" AND substr(path, 1, ?) = ?")
		args = append(args, len(*filter.PathPrefix), *filter.PathPrefix)
	}
	query.WriteString(" ORDER BY path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payloads []*docview.Payload
	for rows.Next() {
		var p docview.Payload
		var packedAt string
		if err := rows.Scan(&p.ID, &p.Path, &p.Content, &p.ContentHash, &packedAt); err != nil {
			return nil, err
		}
		if p.PackedAt, err = parseRFC3339(packedAt, "packed_at"); err != nil {
			return nil, err
		}
		payloads = append(payloads, &p)
	}
	return payloads, rows.Err()
}

// Fetch returns the content stored at path.
// Returns ENOTFOUND if there is no payload at path.
func (s *PayloadService) Fetch(ctx context.Context, path string) (string, error) {
	p, err := s.FindPayloadByPath(ctx, path)
	if err != nil {
		return "", err
	}
	return p.Content, nil
}

// Paths returns every stored path in sorted order.
func (s *PayloadService) Paths(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT path FROM payloads ORDER BY path ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
