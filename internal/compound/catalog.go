package compound

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// languagePattern holds the lexical tables for one language. Instances are
// built once by newCatalog and never mutated afterwards, so they are safe for
// unsynchronized concurrent reads.
type languagePattern struct {
	weekday  *regexp.Regexp // <indicator> <weekday-name>
	monthDay *regexp.Regexp // <indicator> <month-word> <day-token> <suffix>?
	offsets  map[string]int // indicator word -> -1 (last), 0 (this), +1 (next)
	weekdays map[string]int // weekday word -> 0..6, Monday=0 for every language
	numbers  map[string]int // word numerals -> 1..31; nil when the language has none
}

// matchKind discriminates the two constructs a pattern can recognize.
type matchKind int

const (
	kindWeekday matchKind = iota
	kindMonthDay
)

// match is the ephemeral result of a successful catalog lookup.
type match struct {
	kind    matchKind
	offset  int    // weeks for kindWeekday, months for kindMonthDay
	weekday int    // target weekday index, kindWeekday only
	dayTok  string // raw day token, kindMonthDay only
}

// match classifies text against this language's matchers. Both matchers are
// anchored at the start of the (already trimmed) input. The month-day matcher
// takes precedence when both fire and its span is strictly longer, since the
// month-day construct is the more specific of the two.
func (p *languagePattern) match(text string) (match, bool) {
	var monthSpan, weekSpan []string
	if p.monthDay != nil {
		monthSpan = p.monthDay.FindStringSubmatch(text)
	}
	if p.weekday != nil {
		weekSpan = p.weekday.FindStringSubmatch(text)
	}

	if monthSpan != nil && (weekSpan == nil || len(monthSpan[0]) > len(weekSpan[0])) {
		offset, ok := p.offsets[strings.ToLower(monthSpan[1])]
		if !ok {
			return match{}, false
		}
		return match{kind: kindMonthDay, offset: offset, dayTok: monthSpan[2]}, true
	}

	if weekSpan != nil {
		offset, okOffset := p.offsets[strings.ToLower(weekSpan[1])]
		day, okDay := p.weekdays[strings.ToLower(weekSpan[2])]
		if !okOffset || !okDay {
			return match{}, false
		}
		return match{kind: kindWeekday, offset: offset, weekday: day}, true
	}

	return match{}, false
}

// canonicalTag collapses a BCP-47 language tag (or a close variant such as
// "en_US") to its base language key. Returns false for unparseable tags.
func canonicalTag(tag string) (string, bool) {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return "", false
	}
	t, err := language.Parse(tag)
	if err != nil {
		// A ValueError means the tag is well-formed but carries unknown
		// subtags; the parsed tag still has a usable base language.
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return "", false
		}
	}
	base, conf := t.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}

// newCatalog builds the per-language pattern tables. All matchers are
// start-anchored; alphabetic scripts match case-insensitively, logographic
// scripts match exactly.
func newCatalog() map[string]*languagePattern {
	return map[string]*languagePattern{
		"zh": {
			weekday:  regexp.MustCompile(`^(上|下|本|这)周(?:星期)?([一二三四五六日天1234567])`),
			monthDay: regexp.MustCompile(`^(上|下|本|这)(?:个)?月([一二三四五六七八九十]+|[0-9]+)(?:号|日)`),
			offsets:  map[string]int{"上": -1, "下": 1, "本": 0, "这": 0},
			weekdays: map[string]int{
				"一": 0, "二": 1, "三": 2, "四": 3, "五": 4, "六": 5, "日": 6, "天": 6,
				"1": 0, "2": 1, "3": 2, "4": 3, "5": 4, "6": 5, "7": 6,
			},
			numbers: chineseNumerals(),
		},
		"en": {
			weekday:  regexp.MustCompile(`(?i)^(last|next|this)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
			monthDay: regexp.MustCompile(`(?i)^(last|next|this)\s+month\s+(\d{1,2})(?:st|nd|rd|th)?`),
			offsets:  map[string]int{"last": -1, "next": 1, "this": 0},
			weekdays: map[string]int{
				"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
				"friday": 4, "saturday": 5, "sunday": 6,
			},
		},
		"es": {
			weekday:  regexp.MustCompile(`(?i)^(pasado|próximo|este)\s+(lunes|martes|miércoles|jueves|viernes|sábado|domingo)`),
			monthDay: regexp.MustCompile(`(?i)^(pasado|próximo|este)\s+mes\s+(\d{1,2})`),
			offsets:  map[string]int{"pasado": -1, "próximo": 1, "este": 0},
			weekdays: map[string]int{
				"lunes": 0, "martes": 1, "miércoles": 2, "jueves": 3,
				"viernes": 4, "sábado": 5, "domingo": 6,
			},
		},
		"fr": {
			weekday:  regexp.MustCompile(`(?i)^(dernier|prochain|ce)\s+(lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche)`),
			monthDay: regexp.MustCompile(`(?i)^(dernier|prochain|ce)\s+mois\s+(\d{1,2})`),
			offsets:  map[string]int{"dernier": -1, "prochain": 1, "ce": 0},
			weekdays: map[string]int{
				"lundi": 0, "mardi": 1, "mercredi": 2, "jeudi": 3,
				"vendredi": 4, "samedi": 5, "dimanche": 6,
			},
		},
		"de": {
			weekday:  regexp.MustCompile(`(?i)^(letzten|nächsten|diesen)\s+(montag|dienstag|mittwoch|donnerstag|freitag|samstag|sonntag)`),
			monthDay: regexp.MustCompile(`(?i)^(letzten|nächsten|diesen)\s+monat\s+(\d{1,2})`),
			offsets:  map[string]int{"letzten": -1, "nächsten": 1, "diesen": 0},
			weekdays: map[string]int{
				"montag": 0, "dienstag": 1, "mittwoch": 2, "donnerstag": 3,
				"freitag": 4, "samstag": 5, "sonntag": 6,
			},
		},
		"it": {
			weekday:  regexp.MustCompile(`(?i)^(scorso|prossimo|questo)\s+(lunedì|martedì|mercoledì|giovedì|venerdì|sabato|domenica)`),
			monthDay: regexp.MustCompile(`(?i)^(scorso|prossimo|questo)\s+mese\s+(\d{1,2})`),
			offsets:  map[string]int{"scorso": -1, "prossimo": 1, "questo": 0},
			weekdays: map[string]int{
				"lunedì": 0, "martedì": 1, "mercoledì": 2, "giovedì": 3,
				"venerdì": 4, "sabato": 5, "domenica": 6,
			},
		},
		"pt": {
			weekday:  regexp.MustCompile(`(?i)^(passado|próximo|este)\s+(segunda|terça|quarta|quinta|sexta|sábado|domingo)`),
			monthDay: regexp.MustCompile(`(?i)^(passado|próximo|este)\s+mês\s+(\d{1,2})`),
			offsets:  map[string]int{"passado": -1, "próximo": 1, "este": 0},
			weekdays: map[string]int{
				"segunda": 0, "terça": 1, "quarta": 2, "quinta": 3,
				"sexta": 4, "sábado": 5, "domingo": 6,
			},
		},
		"ru": {
			weekday:  regexp.MustCompile(`(?i)^(прошлый|следующий|этот)\s+(понедельник|вторник|среда|четверг|пятница|суббота|воскресенье)`),
			monthDay: regexp.MustCompile(`(?i)^(прошлый|следующий|этот)\s+месяц\s+(\d{1,2})`),
			offsets:  map[string]int{"прошлый": -1, "следующий": 1, "этот": 0},
			weekdays: map[string]int{
				"понедельник": 0, "вторник": 1, "среда": 2, "четверг": 3,
				"пятница": 4, "суббота": 5, "воскресенье": 6,
			},
		},
		"ja": {
			weekday:  regexp.MustCompile(`^(先|来|今)週の?(月|火|水|木|金|土|日)曜日?`),
			monthDay: regexp.MustCompile(`^(先|来|今)月(\d{1,2})日`),
			offsets:  map[string]int{"先": -1, "来": 1, "今": 0},
			weekdays: map[string]int{"月": 0, "火": 1, "水": 2, "木": 3, "金": 4, "土": 5, "日": 6},
		},
		"ko": {
			weekday:  regexp.MustCompile(`^(지난|다음|이번)\s*주?\s*(월|화|수|목|금|토|일)요일`),
			monthDay: regexp.MustCompile(`^(지난|다음|이번)\s*달\s*(\d{1,2})일`),
			offsets:  map[string]int{"지난": -1, "다음": 1, "이번": 0},
			weekdays: map[string]int{"월": 0, "화": 1, "수": 2, "목": 3, "금": 4, "토": 5, "일": 6},
		},
	}
}

// chineseNumerals maps Chinese word numerals to days of month 1..31.
func chineseNumerals() map[string]int {
	units := []string{"一", "二", "三", "四", "五", "六", "七", "八", "九"}
	m := make(map[string]int, 31)
	for i, u := range units {
		m[u] = i + 1 // 一..九
	}
	m["十"] = 10
	for i, u := range units {
		m["十"+u] = 11 + i // 十一..十九
	}
	m["二十"] = 20
	for i, u := range units {
		m["二十"+u] = 21 + i // 二十一..二十九
	}
	m["三十"] = 30
	m["三十一"] = 31
	return m
}
