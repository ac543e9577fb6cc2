package summarizer

import (
	"context"

	"catalog-query/internal/cache"
)

//go:generate mockgen -destination=mock_summarizer.go -package=summarizer . Summarizer

// Summarizer resume un texto libre en una sola frase.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Memoized guarda el resumen por texto de entrada. El modelo decodifica de forma
// determinista, así que el mismo texto siempre produce el mismo resumen.
type Memoized struct {
	next  Summarizer
	cache *cache.Cache
}

func NewMemoized(next Summarizer, c *cache.Cache) *Memoized {
	return &Memoized{next: next, cache: c}
}

func (m *Memoized) Summarize(ctx context.Context, text string) (string, error) {
	key := "summary:" + text
	if cached, found := m.cache.GetValue(key); found {
		if s, ok := cached.(string); ok {
			return s, nil
		}
	}

	summary, err := m.next.Summarize(ctx, text)
	if err != nil {
		return "", err
	}
	m.cache.Set(key, summary)
	return summary, nil
}
