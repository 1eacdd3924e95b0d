package autocomplete

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/iw2rmb/scribe/internal/log"
)

const (
	DefaultCacheExpiration      = 10 * time.Minute
	DefaultCacheCleanupInterval = 30 * time.Minute
)

// Engine answers completion lookups against a fixed word list.
// Lookups are memoized per partial word.
type Engine struct {
	words []string
	cache *gocache.Cache
}

func NewEngine(words []string) *Engine {
	return &Engine{
		words: append([]string(nil), words...),
		cache: gocache.New(DefaultCacheExpiration, DefaultCacheCleanupInterval),
	}
}

// Candidates returns every word that starts with partial without being
// equal to it, in word-list order. An empty partial has no candidates.
func (e *Engine) Candidates(partial string) []string {
	if partial == "" {
		return nil
	}
	if v, ok := e.cache.Get(partial); ok {
		if out, ok := v.([]string); ok {
			log.Debug(log.CatComplete, "cache hit", "partial", partial)
			return append([]string(nil), out...)
		}
		log.Error(log.CatComplete, "wrong type in candidate cache", "partial", partial)
	}

	var out []string
	for _, w := range e.words {
		if w != partial && strings.HasPrefix(w, partial) {
			out = append(out, w)
		}
	}
	e.cache.Set(partial, out, gocache.DefaultExpiration)
	return append([]string(nil), out...)
}

// Suffix returns the part of candidate not yet typed. A candidate that does
// not extend partial has no suffix.
func (e *Engine) Suffix(candidate, partial string) string {
	if !strings.HasPrefix(candidate, partial) {
		return ""
	}
	return candidate[len(partial):]
}
