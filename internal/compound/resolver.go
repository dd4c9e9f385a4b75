// Package compound resolves compound relative date expressions such as
// "last friday", "上周五" or "下个月二十二号" against a caller-supplied base
// time. It combines a per-language pattern catalog, word-numeral
// normalization and calendar arithmetic behind a single entry point meant to
// sit early in a multi-resolver parsing chain.
package compound

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// Resolution failures. ErrNoMatch is a normal negative result the caller uses
// to fall through to the next resolver; ErrInvalidNumeral is a hard miss for
// the input (the numeral is language-specific, retrying with another language
// is pointless); ErrUnsupportedLanguage is a configuration-level error.
var (
	ErrNoMatch             = errors.New("no compound relative expression found")
	ErrInvalidNumeral      = errors.New("day token is not a valid day of month")
	ErrUnsupportedLanguage = errors.New("unsupported language tag")
)

// Resolver matches and resolves compound relative expressions. The zero value
// is not usable; construct with NewResolver. A Resolver is immutable after
// construction and safe for concurrent use.
type Resolver struct {
	catalog map[string]*languagePattern
}

// NewResolver builds a resolver with the full built-in language catalog.
func NewResolver() *Resolver {
	return &Resolver{catalog: newCatalog()}
}

// TryResolve resolves text relative to base for the given language tag.
// Tags may carry regions or scripts ("zh-CN", "pt_BR"); they collapse to the
// base language. The returned time keeps base's time of day and location.
// Failures are ErrNoMatch, ErrInvalidNumeral or ErrUnsupportedLanguage.
func (r *Resolver) TryResolve(text string, base time.Time, tag string) (time.Time, error) {
	p, err := r.pattern(tag)
	if err != nil {
		return time.Time{}, err
	}

	m, ok := p.match(strings.TrimSpace(text))
	if !ok {
		return time.Time{}, ErrNoMatch
	}

	switch m.kind {
	case kindMonthDay:
		day, err := normalizeDay(m.dayTok, p.numbers)
		if err != nil {
			return time.Time{}, err
		}
		return ResolveMonthDay(base, m.offset, day), nil
	default:
		return ResolveWeekday(base, m.offset, m.weekday), nil
	}
}

// Applicable reports whether text contains a construct this resolver would
// claim for the given language, without performing any arithmetic. An
// unsupported tag is simply not applicable.
func (r *Resolver) Applicable(text, tag string) bool {
	p, err := r.pattern(tag)
	if err != nil {
		return false
	}
	_, ok := p.match(strings.TrimSpace(text))
	return ok
}

// Languages returns the supported base language keys in sorted order.
func (r *Resolver) Languages() []string {
	keys := make([]string, 0, len(r.catalog))
	for k := range r.catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Resolver) pattern(tag string) (*languagePattern, error) {
	key, ok := canonicalTag(tag)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	p, ok := r.catalog[key]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	return p, nil
}
