package util

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mithrel/scribe/internal/db"
	"github.com/mithrel/scribe/pkg/api"
)

// ScoreCompletions returns the top N matches for the input string from the candidates list.
func ScoreCompletions(input string, candidates []string, n int) []string {
	if input == "" {
		return candidates
	}
	matches := fuzzy.Find(input, candidates)
	limit := len(matches)
	if n > 0 && n < limit {
		limit = n
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}

type titles []api.Document

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// MatchTitles fuzzy-matches query against document titles, best first.
func MatchTitles(query string, docs []api.Document, n int) []api.Document {
	if strings.TrimSpace(query) == "" {
		if n > 0 && n < len(docs) {
			return docs[:n]
		}
		return docs
	}
	matches := fuzzy.FindFrom(query, titles(docs))
	limit := len(matches)
	if n > 0 && n < limit {
		limit = n
	}
	out := make([]api.Document, limit)
	for i := 0; i < limit; i++ {
		out[i] = docs[matches[i].Index]
	}
	return out
}

// ErrAmbiguous is returned when a reference matches several documents.
type ErrAmbiguous struct {
	Ref        string
	Candidates []api.Document
}

func (e *ErrAmbiguous) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q is ambiguous:", e.Ref)
	for i, d := range e.Candidates {
		if i == 5 {
			fmt.Fprintf(&b, " (+%d more)", len(e.Candidates)-i)
			break
		}
		fmt.Fprintf(&b, " %s (%s)", api.ShortID(d.ID), d.Title)
	}
	return b.String()
}

// ResolveRef finds one document by full ID, unique ID prefix, or the single
// best fuzzy title match.
func ResolveRef(ctx context.Context, store db.Store, ref string) (api.Document, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return api.Document{}, fmt.Errorf("empty document reference")
	}
	d, err := store.LoadDocument(ctx, ref)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, api.ErrNotFound) {
		return api.Document{}, err
	}

	docs, err := store.ListDocuments(ctx)
	if err != nil {
		return api.Document{}, err
	}
	var byPrefix []api.Document
	for _, d := range docs {
		if strings.HasPrefix(strings.ToLower(d.ID), strings.ToLower(ref)) {
			byPrefix = append(byPrefix, d)
		}
	}
	switch len(byPrefix) {
	case 1:
		return byPrefix[0], nil
	case 0:
	default:
		return api.Document{}, &ErrAmbiguous{Ref: ref, Candidates: byPrefix}
	}

	matches := fuzzy.FindFrom(ref, titles(docs))
	switch {
	case len(matches) == 0:
		return api.Document{}, fmt.Errorf("document %q: %w", ref, api.ErrNotFound)
	case len(matches) == 1 || matches[0].Score > matches[1].Score:
		return docs[matches[0].Index], nil
	}
	var tied []api.Document
	for _, m := range matches {
		if m.Score == matches[0].Score {
			tied = append(tied, docs[m.Index])
		}
	}
	return api.Document{}, &ErrAmbiguous{Ref: ref, Candidates: tied}
}
