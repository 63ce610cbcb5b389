package content

import (
	"context"

	"github.com/gremioaf/portal/internal/content/docstore"
)

// Mailbox is the append-only feedback store: entries are created by the
// public submission form and deleted by administrators. There is no update
// operation.
type Mailbox struct {
	c Collection[FeedbackFields, struct{}]
}

// NewMailbox constructs the feedback facade.
func NewMailbox(backend Backend) Mailbox {
	return Mailbox{c: NewCollection[FeedbackFields, struct{}](docstore.KindFeedback, backend)}
}

func (m Mailbox) Kind() docstore.Kind {
	return m.c.Kind()
}

func (m Mailbox) List(ctx context.Context) []Record[FeedbackFields] {
	return m.c.List(ctx)
}

func (m Mailbox) Create(ctx context.Context, fields FeedbackFields) (Record[FeedbackFields], error) {
	return m.c.Create(ctx, fields)
}

func (m Mailbox) Delete(ctx context.Context, id string) error {
	return m.c.Delete(ctx, id)
}
