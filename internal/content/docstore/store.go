package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/gremioaf/portal/internal/common"
	"github.com/gremioaf/portal/internal/dbx"
	"github.com/gremioaf/portal/internal/logging"
)

// Store performs create/read/update/delete over any registered kind's
// collection, applying the registry's ordering contract on every list.
//
// List degrades to an empty slice on any underlying failure so that one
// kind's transient unavailability never blocks loading of the others; the
// failure is logged. Mutations propagate failures to the caller.
type Store struct {
	db     dbx.DBTX
	logger logging.Logger
}

// NewStore constructs a store bound to the given DBTX.
func NewStore(db dbx.DBTX, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// orderExpr returns the ORDER BY expression for a location. The special sort
// field "createdAt" maps to the created_at column; every other field lives
// inside the jsonb document. Both operands come from the closed registry,
// never from callers.
func orderExpr(loc Location) string {
	if loc.SortField == "createdAt" {
		return fmt.Sprintf("created_at %s", loc.Direction)
	}
	return fmt.Sprintf("fields->>'%s' %s", loc.SortField, loc.Direction)
}

// List returns every document of the kind, ordered by its registered sort
// contract. It never returns an error: failures are logged and an empty
// slice is returned.
func (s *Store) List(ctx context.Context, kind Kind) []Document {
	loc, ok := Locate(kind)
	if !ok {
		s.logger.Error(ctx, "list of unregistered kind", "kind", string(kind))
		return []Document{}
	}

	query := fmt.Sprintf(
		`SELECT id, fields, created_at FROM documents WHERE collection = $1 ORDER BY %s`,
		orderExpr(loc),
	)

	rows, err := s.db.QueryContext(ctx, query, loc.Collection)
	if err != nil {
		s.logger.Error(ctx, "list failed", "collection", loc.Collection, "error", err)
		return []Document{}
	}
	defer rows.Close()

	result := make([]Document, 0)
	for rows.Next() {
		var (
			doc Document
			raw []byte
		)
		if err := rows.Scan(&doc.ID, &raw, &doc.CreatedAt); err != nil {
			s.logger.Error(ctx, "list scan failed", "collection", loc.Collection, "error", err)
			return []Document{}
		}
		if err := json.Unmarshal(raw, &doc.Fields); err != nil {
			s.logger.Error(ctx, "list decode failed", "collection", loc.Collection, "id", doc.ID, "error", err)
			return []Document{}
		}
		result = append(result, doc)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error(ctx, "list failed", "collection", loc.Collection, "error", err)
		return []Document{}
	}
	return result
}

// Create persists a new document of the kind and returns it with its
// store-assigned id and server creation timestamp. Callers never set either.
func (s *Store) Create(ctx context.Context, kind Kind, fields map[string]any) (Document, error) {
	loc, ok := Locate(kind)
	if !ok {
		return Document{}, fmt.Errorf("unregistered kind %q", kind)
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return Document{}, fmt.Errorf("encoding fields: %w", err)
	}

	doc := Document{ID: uuid.NewString(), Fields: fields}

	query := `
		INSERT INTO documents (id, collection, fields)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	if err := s.db.QueryRowContext(ctx, query, doc.ID, loc.Collection, payload).Scan(&doc.CreatedAt); err != nil {
		return Document{}, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}

// Update merges the given partial field set into an existing document.
// Unspecified fields are left untouched. The id and creation timestamp are
// never part of the merged payload.
func (s *Store) Update(ctx context.Context, kind Kind, id string, fields map[string]any) error {
	loc, ok := Locate(kind)
	if !ok {
		return fmt.Errorf("unregistered kind %q", kind)
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encoding fields: %w", err)
	}

	query := `UPDATE documents SET fields = fields || $3::jsonb WHERE id = $1 AND collection = $2`
	res, err := s.db.ExecContext(ctx, query, id, loc.Collection, payload)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes a document of the kind by id.
func (s *Store) Delete(ctx context.Context, kind Kind, id string) error {
	loc, ok := Locate(kind)
	if !ok {
		return fmt.Errorf("unregistered kind %q", kind)
	}

	query := `DELETE FROM documents WHERE id = $1 AND collection = $2`
	res, err := s.db.ExecContext(ctx, query, id, loc.Collection)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
