// Package pipeline chains the date resolvers into a single parse operation.
// Stages run in a fixed order: compound relative expressions first, then
// single-token relative words and signed offsets, then absolute layouts, then
// Unix timestamps. Compound runs before the simpler stages so phrases like
// "last friday" are never partially matched by a weaker resolver.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aaronyao/dateparser/internal/compound"
)

// Stage names reported in Result.Resolver.
const (
	StageCompound  = "compound"
	StageRelative  = "relative"
	StageAbsolute  = "absolute"
	StageTimestamp = "timestamp"
)

// ErrUnparseable means no stage recognized the input.
var ErrUnparseable = errors.New("unrecognized date expression")

// Result is the outcome of a successful parse.
type Result struct {
	Time     time.Time
	Resolver string // stage that claimed the input
	Language string // language key for compound matches, empty otherwise
}

// Parser runs the resolver chain. It is immutable after construction and safe
// for concurrent use.
type Parser struct {
	compound  *compound.Resolver
	languages []string
	location  *time.Location
}

// New creates a parser probing the given languages in order. An empty list
// means every supported language; a nil location means time.Local (used only
// by the absolute stage, the relative stages inherit the base's location).
func New(languages []string, loc *time.Location) *Parser {
	r := compound.NewResolver()
	if len(languages) == 0 {
		languages = r.Languages()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Parser{compound: r, languages: languages, location: loc}
}

// Languages returns the probe order this parser uses for compound matches.
func (p *Parser) Languages() []string {
	out := make([]string, len(p.languages))
	copy(out, p.languages)
	return out
}

// Parse resolves text relative to base, trying each stage in order.
// An invalid day numeral inside a compound construct aborts the parse: the
// numeral is language-specific, so neither another language nor a later stage
// can do better with the same input.
func (p *Parser) Parse(text string, base time.Time) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrUnparseable
	}

	for _, lang := range p.languages {
		got, err := p.compound.TryResolve(text, base, lang)
		switch {
		case err == nil:
			return Result{Time: got, Resolver: StageCompound, Language: lang}, nil
		case errors.Is(err, compound.ErrInvalidNumeral):
			return Result{}, fmt.Errorf("resolving %q: %w", text, err)
		}
	}

	if got, ok := parseRelative(text, base); ok {
		return Result{Time: got, Resolver: StageRelative}, nil
	}
	if got, ok := parseAbsolute(text, p.location); ok {
		return Result{Time: got, Resolver: StageAbsolute}, nil
	}
	if got, ok := parseTimestamp(text); ok {
		return Result{Time: got, Resolver: StageTimestamp}, nil
	}

	return Result{}, ErrUnparseable
}
