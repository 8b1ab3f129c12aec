package queries

import (
	"context"

	"party-rental/internal/domain/contact"
)

type ContactListFilter struct {
	Status *contact.Status
	After  *Cursor
	Limit  int
}

type ContactListInput struct {
	Status string
	After  string
	Limit  int
}

type ContactPage struct {
	Items      []*ContactView
	NextCursor *string
}

type ContactReadStore interface {
	List(ctx context.Context, filter ContactListFilter) ([]*contact.Contact, error)
}

type ContactQueries interface {
	List(ctx context.Context, in ContactListInput) (*ContactPage, error)
}

type contactQueriesImpl struct {
	store ContactReadStore
}

func NewContactQueries(store ContactReadStore) ContactQueries {
	return &contactQueriesImpl{store: store}
}

// List returns newest inquiries first.
func (q *contactQueriesImpl) List(ctx context.Context, in ContactListInput) (*ContactPage, error) {
	filter := ContactListFilter{Limit: ValidateLimit(in.Limit)}
	if in.Status != "" {
		status, err := contact.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	after, err := DecodeAfterCursor(in.After)
	if err != nil {
		return nil, err
	}
	filter.After = after

	limit := filter.Limit
	filter.Limit = limit + 1

	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &ContactPage{Items: make([]*ContactView, 0, min(len(rows), limit))}
	for i, c := range rows {
		if i == limit {
			last := rows[limit-1]
			next := EncodeAfterCursor(last.CreatedAt(), last.ID())
			page.NextCursor = &next
			break
		}
		page.Items = append(page.Items, NewContactView(c))
	}
	return page, nil
}
