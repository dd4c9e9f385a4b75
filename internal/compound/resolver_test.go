package compound

import (
	"errors"
	"testing"
	"time"
)

// 2024-01-15 is a Monday; the focal base time for most expression tests.
var baseMonday = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func TestTryResolve_Weekday(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name string
		text string
		lang string
		want time.Time
	}{
		{"english last friday", "last friday", "en", time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)},
		{"english next monday", "next monday", "en", time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)},
		{"english this wednesday", "this wednesday", "en", time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC)},
		{"english mixed case", "Last Friday", "en", time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)},
		{"english surrounding whitespace", "  last friday  ", "en", time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)},
		{"chinese last friday", "上周五", "zh", time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)},
		{"chinese next wednesday", "下周三", "zh", time.Date(2024, 1, 24, 10, 0, 0, 0, time.UTC)},
		{"chinese this tuesday", "本周二", "zh", time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)},
		{"chinese digit weekday", "上周5", "zh", time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)},
		{"chinese sunday via 天", "下周天", "zh", time.Date(2024, 1, 28, 10, 0, 0, 0, time.UTC)},
		{"japanese with particle", "先週の金曜日", "ja", time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)},
		{"japanese without particle", "来週月曜日", "ja", time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)},
		{"korean spaced", "지난 주 금요일", "ko", time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)},
		{"korean compact", "다음주 월요일", "ko", time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.TryResolve(tt.text, baseMonday, tt.lang)
			if err != nil {
				t.Fatalf("TryResolve(%q, %q): unexpected error: %v", tt.text, tt.lang, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("TryResolve(%q, %q) = %v, want %v", tt.text, tt.lang, got, tt.want)
			}
		})
	}
}

func TestTryResolve_TenLanguageWeekdaySweep(t *testing.T) {
	r := NewResolver()

	// Every phrase below means "last friday"; from Monday 2024-01-15 that is
	// 2024-01-12 regardless of language.
	want := time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)
	phrases := map[string]string{
		"zh": "上周五",
		"en": "last friday",
		"es": "pasado viernes",
		"fr": "dernier vendredi",
		"de": "letzten freitag",
		"it": "scorso venerdì",
		"pt": "passado sexta",
		"ru": "прошлый пятница",
		"ja": "先週の金曜日",
		"ko": "지난 주 금요일",
	}

	for lang, phrase := range phrases {
		t.Run(lang, func(t *testing.T) {
			got, err := r.TryResolve(phrase, baseMonday, lang)
			if err != nil {
				t.Fatalf("TryResolve(%q, %q): unexpected error: %v", phrase, lang, err)
			}
			if !got.Equal(want) {
				t.Errorf("TryResolve(%q, %q) = %v, want %v", phrase, lang, got, want)
			}
		})
	}
}

func TestTryResolve_MonthDay(t *testing.T) {
	r := NewResolver()
	base := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		lang string
		want time.Time
	}{
		{"chinese word numeral last month", "上个月十七号", "zh", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"chinese short indicator", "上月十七号", "zh", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"chinese digits", "上个月17号", "zh", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"chinese next month word numeral", "下个月二十二号", "zh", time.Date(2024, 4, 22, 14, 30, 0, 0, time.UTC)},
		{"chinese 日 suffix", "下个月22日", "zh", time.Date(2024, 4, 22, 14, 30, 0, 0, time.UTC)},
		{"english ordinal suffix", "last month 17th", "en", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"english next month", "next month 22nd", "en", time.Date(2024, 4, 22, 14, 30, 0, 0, time.UTC)},
		{"english this month is identity day", "this month 15th", "en", base},
		{"spanish", "pasado mes 17", "es", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"french", "dernier mois 17", "fr", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"german", "letzten monat 17", "de", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"italian", "scorso mese 17", "it", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"portuguese", "passado mês 17", "pt", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"russian", "прошлый месяц 17", "ru", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"japanese", "先月17日", "ja", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
		{"korean", "지난 달 17일", "ko", time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.TryResolve(tt.text, base, tt.lang)
			if err != nil {
				t.Fatalf("TryResolve(%q, %q): unexpected error: %v", tt.text, tt.lang, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("TryResolve(%q, %q) = %v, want %v", tt.text, tt.lang, got, tt.want)
			}
		})
	}
}

func TestTryResolve_Failures(t *testing.T) {
	r := NewResolver()

	t.Run("no match", func(t *testing.T) {
		_, err := r.TryResolve("foo bar", baseMonday, "en")
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("got %v, want ErrNoMatch", err)
		}
	})

	t.Run("plain relative word is not claimed", func(t *testing.T) {
		_, err := r.TryResolve("tomorrow", baseMonday, "en")
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("got %v, want ErrNoMatch", err)
		}
	})

	t.Run("out of range day", func(t *testing.T) {
		// The two-digit matcher captures "40"; normalization must reject it
		// rather than clamp.
		_, err := r.TryResolve("last month 40", baseMonday, "en")
		if !errors.Is(err, ErrInvalidNumeral) {
			t.Errorf("got %v, want ErrInvalidNumeral", err)
		}
	})

	t.Run("zero day", func(t *testing.T) {
		_, err := r.TryResolve("上个月0号", baseMonday, "zh")
		if !errors.Is(err, ErrInvalidNumeral) {
			t.Errorf("got %v, want ErrInvalidNumeral", err)
		}
	})

	t.Run("unsupported language", func(t *testing.T) {
		_, err := r.TryResolve("last friday", baseMonday, "nl")
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("got %v, want ErrUnsupportedLanguage", err)
		}
	})

	t.Run("garbage tag", func(t *testing.T) {
		_, err := r.TryResolve("last friday", baseMonday, "not a tag!")
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("got %v, want ErrUnsupportedLanguage", err)
		}
	})
}

func TestTryResolve_TagVariants(t *testing.T) {
	r := NewResolver()
	want := time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		tag    string
		phrase string
	}{
		{"zh-CN", "上周五"},
		{"zh-Hant", "上周五"},
		{"en-US", "last friday"},
		{"en_GB", "last friday"},
		{"pt-BR", "passado sexta"},
		{"ja-JP", "先週の金曜日"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := r.TryResolve(tt.phrase, baseMonday, tt.tag)
			if err != nil {
				t.Fatalf("TryResolve(%q, %q): unexpected error: %v", tt.phrase, tt.tag, err)
			}
			if !got.Equal(want) {
				t.Errorf("TryResolve(%q, %q) = %v, want %v", tt.phrase, tt.tag, got, want)
			}
		})
	}
}

func TestTryResolve_PreservesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, loc)

	got, err := NewResolver().TryResolve("上周五", base, "zh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location() != loc {
		t.Errorf("location changed: got %v, want %v", got.Location(), loc)
	}
	want := time.Date(2024, 1, 12, 10, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestApplicable(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		text string
		lang string
		want bool
	}{
		{"last friday", "en", true},
		{"next month 22nd", "en", true},
		{"上周五", "zh", true},
		{"tomorrow", "en", false},
		{"2024-01-15", "en", false},
		{"last friday", "zh", false},
		{"last friday", "nl", false},
	}

	for _, tt := range tests {
		if got := r.Applicable(tt.text, tt.lang); got != tt.want {
			t.Errorf("Applicable(%q, %q) = %v, want %v", tt.text, tt.lang, got, tt.want)
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := NewResolver().Languages()
	want := []string{"de", "en", "es", "fr", "it", "ja", "ko", "pt", "ru", "zh"}
	if len(langs) != len(want) {
		t.Fatalf("got %d languages %v, want %d", len(langs), langs, len(want))
	}
	for i, w := range want {
		if langs[i] != w {
			t.Errorf("languages[%d] = %q, want %q", i, langs[i], w)
		}
	}
}
