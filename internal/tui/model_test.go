package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aaronyao/dateparser/internal/pipeline"
)

var base = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) // Monday

func newTestModel() Model {
	return New(pipeline.New(nil, time.UTC), "2006-01-02 15:04:05", base)
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func TestModelReparsesOnInput(t *testing.T) {
	m := typeString(newTestModel(), "last friday")

	if m.result == nil {
		t.Fatalf("expected a result, got err=%v", m.err)
	}
	if m.result.Resolver != pipeline.StageCompound {
		t.Errorf("resolver = %q, want %q", m.result.Resolver, pipeline.StageCompound)
	}
	want := time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC)
	if !m.result.Time.Equal(want) {
		t.Errorf("result = %v, want %v", m.result.Time, want)
	}

	var hits int
	for _, p := range m.probes {
		if p.ok {
			hits++
			if p.lang != "en" {
				t.Errorf("unexpected matching language %q", p.lang)
			}
		}
	}
	if hits != 1 {
		t.Errorf("got %d matching probes, want 1", hits)
	}
}

func TestModelShowsErrorForGarbage(t *testing.T) {
	m := typeString(newTestModel(), "foo bar")

	if m.result != nil {
		t.Errorf("unexpected result %v", m.result)
	}
	if m.err == nil {
		t.Error("expected an error for unparseable input")
	}
}

func TestModelClearsOnEmptyInput(t *testing.T) {
	m := typeString(newTestModel(), "x")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(Model)

	if m.result != nil || m.err != nil || len(m.probes) != 0 {
		t.Errorf("expected cleared state, got result=%v err=%v probes=%d", m.result, m.err, len(m.probes))
	}
}

func TestModelQuitsOnEsc(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("got %T, want tea.QuitMsg", msg)
	}
}

func TestViewRendersResult(t *testing.T) {
	m := typeString(newTestModel(), "上周五")

	view := m.View()
	if !strings.Contains(view, "2024-01-12") {
		t.Errorf("view does not show the resolved date:\n%s", view)
	}
	if !strings.Contains(view, "zh") {
		t.Errorf("view does not show the language panel:\n%s", view)
	}
}
