package store

import (
	"context"
	"fmt"
	"time"

	"github.com/codeace-app/codeace/ent"
	"github.com/codeace-app/codeace/ent/snippet"
)

// snippetRepo implements SnippetRepo using the ent client.
type snippetRepo struct {
	client *ent.Client
}

func (r *snippetRepo) Add(ctx context.Context, snip *Snippet) error {
	now := time.Now().UTC()
	_, err := r.client.Snippet.Create().
		SetSnippetID(snip.ID).
		SetUID(snip.UID).
		SetTitle(snip.Title).
		SetLanguage(snip.Language).
		SetCode(snip.Code).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add snippet: %w", err)
	}
	snip.CreatedAt = now
	snip.UpdatedAt = now
	return nil
}

func (r *snippetRepo) ByUser(ctx context.Context, uid string) ([]*Snippet, error) {
	recs, err := r.client.Snippet.Query().
		Where(snippet.UID(uid)).
		Order(ent.Desc(snippet.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query snippets for %s: %w", uid, err)
	}

	out := make([]*Snippet, 0, len(recs))
	for _, rec := range recs {
		out = append(out, &Snippet{
			ID:        rec.SnippetID,
			UID:       rec.UID,
			Title:     rec.Title,
			Language:  rec.Language,
			Code:      rec.Code,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		})
	}
	return out, nil
}

func (r *snippetRepo) Update(ctx context.Context, uid, id string, title, language, code string) error {
	n, err := r.client.Snippet.Update().
		Where(snippet.UID(uid), snippet.SnippetID(id)).
		SetTitle(title).
		SetLanguage(language).
		SetCode(code).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update snippet %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *snippetRepo) Delete(ctx context.Context, uid, id string) error {
	n, err := r.client.Snippet.Delete().
		Where(snippet.UID(uid), snippet.SnippetID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete snippet %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
