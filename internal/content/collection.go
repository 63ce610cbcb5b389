package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gremioaf/portal/internal/content/docstore"
)

// Backend is the generic document store the typed facades are built on.
// List never fails (it degrades to an empty slice); mutations report their
// failures to the caller.
type Backend interface {
	List(ctx context.Context, kind docstore.Kind) []docstore.Document
	Create(ctx context.Context, kind docstore.Kind, fields map[string]any) (docstore.Document, error)
	Update(ctx context.Context, kind docstore.Kind, id string, fields map[string]any) error
	Delete(ctx context.Context, kind docstore.Kind, id string) error
}

// encodeFields converts a typed field struct into the loose map the backend
// stores, via its JSON tags. The id and creation timestamp are not part of
// any field struct, so they can never leak into a payload.
func encodeFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding fields: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding fields: %w", err)
	}
	return m, nil
}

// decodeFields converts a stored document's field map back into the typed
// shape. Storage-only fields are ignored.
func decodeFields[F any](m map[string]any) (F, error) {
	var fields F
	raw, err := json.Marshal(m)
	if err != nil {
		return fields, fmt.Errorf("encoding document: %w", err)
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fields, fmt.Errorf("decoding document: %w", err)
	}
	return fields, nil
}

// Collection binds the generic store to one kind. R is the kind's full
// persisted field shape; F is the subset of fields an update may carry, so
// that merge-style updates can never clobber fields the form does not
// collect (such as a creation-time display date).
type Collection[R any, F any] struct {
	kind    docstore.Kind
	backend Backend
}

// NewCollection constructs the typed facade for a kind.
func NewCollection[R any, F any](kind docstore.Kind, backend Backend) Collection[R, F] {
	return Collection[R, F]{kind: kind, backend: backend}
}

// Kind returns the entity kind this facade is bound to.
func (c Collection[R, F]) Kind() docstore.Kind {
	return c.kind
}

// List returns every record of the kind in its registered order. Records
// whose stored fields no longer decode into the kind's shape are skipped;
// the list itself never fails.
func (c Collection[R, F]) List(ctx context.Context) []Record[R] {
	docs := c.backend.List(ctx, c.kind)
	records := make([]Record[R], 0, len(docs))
	for _, doc := range docs {
		fields, err := decodeFields[R](doc.Fields)
		if err != nil {
			continue
		}
		records = append(records, Record[R]{ID: doc.ID, CreatedAt: doc.CreatedAt, Fields: fields})
	}
	return records
}

// Create persists a new record and returns it with the store-assigned id and
// server timestamp.
func (c Collection[R, F]) Create(ctx context.Context, fields R) (Record[R], error) {
	payload, err := encodeFields(fields)
	if err != nil {
		return Record[R]{}, err
	}
	doc, err := c.backend.Create(ctx, c.kind, payload)
	if err != nil {
		return Record[R]{}, err
	}
	return Record[R]{ID: doc.ID, CreatedAt: doc.CreatedAt, Fields: fields}, nil
}

// Update merges the form's field set into the record with the given id.
// Fields outside F are left untouched.
func (c Collection[R, F]) Update(ctx context.Context, id string, form F) error {
	payload, err := encodeFields(form)
	if err != nil {
		return err
	}
	return c.backend.Update(ctx, c.kind, id, payload)
}

// Delete removes the record with the given id.
func (c Collection[R, F]) Delete(ctx context.Context, id string) error {
	return c.backend.Delete(ctx, c.kind, id)
}
