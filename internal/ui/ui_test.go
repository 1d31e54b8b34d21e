package ui

import (
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m1kedigital/ascii"
	"github.com/m1kedigital/ascii/imageutil"
)

func testModel() *model {
	img := imageutil.CreateSolidImage(80, 80, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	m := newModel(&Option{Image: img, Settings: ascii.DefaultSettings()})
	m.windowWidth = 80
	m.windowHeight = 24
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysAdjustSettings(t *testing.T) {
	t.Parallel()

	m := testModel()
	start := m.settings.Density

	m.Update(keyMsg("D"))
	if m.settings.Density != start+10 {
		t.Errorf("Density = %d after 'D', want %d", m.settings.Density, start+10)
	}
	m.Update(keyMsg("d"))
	if m.settings.Density != start {
		t.Errorf("Density = %d after 'd', want %d", m.settings.Density, start)
	}

	m.Update(keyMsg("i"))
	if !m.settings.Invert {
		t.Error("'i' should toggle invert on")
	}
	m.Update(keyMsg("c"))
	if !m.settings.Colored {
		t.Error("'c' should toggle colored on")
	}
}

func TestSteppingClampsAtRangeEnds(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.settings.Density = ascii.MinDensity
	m.Update(keyMsg("d"))
	if m.settings.Density != ascii.MinDensity {
		t.Errorf("Density stepped below minimum: %d", m.settings.Density)
	}

	m.settings.FontSize = ascii.MaxFontSize
	m.Update(keyMsg("F"))
	if m.settings.FontSize != ascii.MaxFontSize {
		t.Errorf("FontSize stepped above maximum: %d", m.settings.FontSize)
	}
}

func TestBackgroundCycle(t *testing.T) {
	t.Parallel()

	got := ascii.BackgroundDark
	want := []ascii.Background{
		ascii.BackgroundLight,
		ascii.BackgroundNone,
		ascii.BackgroundDark,
	}
	for _, w := range want {
		got = nextBackground(got)
		if got != w {
			t.Fatalf("nextBackground = %v, want %v", got, w)
		}
	}
}

func TestCharsetEditingApplies(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.Update(keyMsg("e"))
	if !m.editingCharset {
		t.Fatal("'e' should enter charset editing")
	}

	m.charsetInput.SetValue(" .#")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.editingCharset {
		t.Error("enter should leave charset editing")
	}
	if m.settings.Charset != " .#" {
		t.Errorf("Charset = %q, want %q", m.settings.Charset, " .#")
	}
}

func TestCharsetEditingCancels(t *testing.T) {
	t.Parallel()

	m := testModel()
	before := m.settings.Charset

	m.Update(keyMsg("e"))
	m.charsetInput.SetValue("zzz")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.settings.Charset != before {
		t.Errorf("esc should keep the previous charset, got %q", m.settings.Charset)
	}
}

func TestViewShowsPreviewAndStatus(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.rerender()
	if len(m.preview) == 0 {
		t.Fatal("expected a preview after rerender")
	}

	view := m.View()
	if !strings.Contains(view, "density") {
		t.Error("view should include the settings line")
	}
}

func TestRerenderFitsWindow(t *testing.T) {
	t.Parallel()

	m := testModel()
	m.windowWidth = 60
	m.windowHeight = 20
	m.rerender()

	if len(m.preview) > m.windowHeight-4 {
		t.Errorf("preview has %d rows, window allows %d", len(m.preview), m.windowHeight-4)
	}
	for _, line := range m.preview {
		if n := len([]rune(line)); n > m.windowWidth-2 {
			t.Errorf("preview line width %d exceeds window budget %d", n, m.windowWidth-2)
		}
	}
}
