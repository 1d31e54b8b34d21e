// Package ui is the interactive tuning surface: a terminal preview of
// the transcript with keybindings for every pipeline parameter. Each
// change re-runs the full pipeline; the UI never patches a previous
// pass.
package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/nfnt/resize"

	"github.com/m1kedigital/ascii"
	"github.com/m1kedigital/ascii/imageutil"
)

// Option configures the interactive session.
type Option struct {
	Image      *imageutil.RGBAImage
	Settings   ascii.Settings
	OutputPath string
}

// Start runs the interactive session until the user quits.
func Start(opt *Option) error {
	m := newModel(opt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

var _ tea.Model = &model{}

type model struct {
	err error

	img        *imageutil.RGBAImage
	settings   ascii.Settings
	outputPath string

	preview []string
	status  string

	charsetInput   textinput.Model
	editingCharset bool

	windowWidth  int
	windowHeight int
}

func newModel(opt *Option) *model {
	ti := textinput.New()
	ti.Placeholder = "charset (empty = built-in ramp)"
	ti.CharLimit = 256

	return &model{
		img:          opt.Image,
		settings:     opt.Settings,
		outputPath:   opt.OutputPath,
		charsetInput: ti,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

// rerender runs a full pipeline pass sized to the terminal and caches
// the transcript rows for View. The preview pass fits the image to the
// window first (never upscaling) so the row count stays bounded; the
// save and copy actions run separate passes at the user's real density.
func (m *model) rerender() {
	if m.img == nil || m.windowWidth < 4 || m.windowHeight < 6 {
		m.preview = nil
		return
	}

	cols := m.windowWidth - 2
	rows := m.windowHeight - 4

	// Terminal cells are roughly twice as tall as wide; budget pixels
	// accordingly before fitting.
	fit := resize.Thumbnail(uint(cols*4), uint(rows*8), m.img.NRGBA, resize.Lanczos3)

	s := m.settings
	if s.Density > cols {
		s.Density = cols
	}
	out, err := ascii.NewRenderer(ascii.WithSettings(s)).Render(fit)
	if err != nil {
		m.preview = []string{err.Error()}
		return
	}

	lines := out.Rows
	if len(lines) > rows {
		lines = lines[:rows]
	}
	// The renderer never goes below MinDensity, so on very narrow
	// terminals the rows can still overshoot the window.
	for i, line := range lines {
		if r := []rune(line); len(r) > cols {
			lines[i] = string(r[:cols])
		}
	}
	m.preview = lines
}

func (m *model) View() string {
	b := new(strings.Builder)

	pad := ""
	if m.windowWidth > 0 && len(m.preview) > 0 {
		width := len([]rune(m.preview[0]))
		if n := (m.windowWidth - width) / 2; n > 0 {
			pad = strings.Repeat(" ", n)
		}
	}
	for _, line := range m.preview {
		b.WriteString(pad)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editingCharset {
		b.WriteString("  charset: " + m.charsetInput.View() + "\n")
		b.WriteString("  " + editHintStyle.Render("enter apply · esc cancel") + "\n")
		return b.String()
	}

	b.WriteString("  " + settingsStyle.Render(m.settingsView()) + "\n")
	b.WriteString("  " + m.helpView() + "\n")
	return b.String()
}

func (m *model) settingsView() string {
	s := m.settings
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf(
		"density %d · size %d · boldness %.2f · invert %s · color %s · bg %s",
		clampShown(s.Density, ascii.MinDensity, ascii.MaxDensity),
		clampShown(s.FontSize, ascii.MinFontSize, ascii.MaxFontSize),
		s.Boldness, onOff(s.Invert), onOff(s.Colored), s.Background,
	)
}

func (m *model) helpView() string {
	badge := color.New(color.BgBlue, color.FgWhite).Sprint(" ascii ")
	if m.status != "" {
		badge = color.New(color.BgGreen, color.FgBlack).Sprintf(" %s ", m.status)
	}
	return badge + helpStyle.Render(" d/D density · f/F size · b/B bold · i invert · c color · g bg · e charset · s save · y copy · q quit")
}

func clampShown(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type savedMsg struct{ path string }
type copiedMsg struct{}
type errMsg struct{ error }

// saveCmd runs a full-density pass and writes the PNG.
func (m *model) saveCmd() tea.Cmd {
	img, settings, path := m.img, m.settings, m.outputPath
	if path == "" {
		path = "ascii.png"
	}
	return func() tea.Msg {
		out, err := ascii.NewRenderer(ascii.WithSettings(settings)).Render(img)
		if err != nil {
			return errMsg{err}
		}
		if err := imageutil.SavePNG(out.Bitmap, path); err != nil {
			return errMsg{err}
		}
		return savedMsg{path: path}
	}
}

// copyCmd runs a full-density pass and puts the transcript on the
// system clipboard.
func (m *model) copyCmd() tea.Cmd {
	img, settings := m.img, m.settings
	return func() tea.Msg {
		out, err := ascii.NewRenderer(ascii.WithSettings(settings)).Render(img)
		if err != nil {
			return errMsg{err}
		}
		if err := clipboard.WriteAll(out.Text()); err != nil {
			return errMsg{err}
		}
		return copiedMsg{}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.rerender()
		return m, nil

	case savedMsg:
		m.status = "saved " + msg.path
		return m, nil

	case copiedMsg:
		m.status = "copied"
		return m, nil

	case errMsg:
		m.status = msg.Error()
		return m, nil

	case tea.KeyMsg:
		if m.editingCharset {
			return m.updateCharsetInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *model) updateCharsetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.settings.Charset = m.charsetInput.Value()
		m.editingCharset = false
		m.charsetInput.Blur()
		m.rerender()
		return m, nil
	case tea.KeyEsc:
		m.editingCharset = false
		m.charsetInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.charsetInput, cmd = m.charsetInput.Update(msg)
	return m, cmd
}

func (m *model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "d":
		m.settings.Density -= 10
	case "D":
		m.settings.Density += 10
	case "f":
		m.settings.FontSize--
	case "F":
		m.settings.FontSize++
	case "b":
		m.settings.Boldness -= 0.05
	case "B":
		m.settings.Boldness += 0.05
	case "i":
		m.settings.Invert = !m.settings.Invert
	case "c":
		m.settings.Colored = !m.settings.Colored
	case "g":
		m.settings.Background = nextBackground(m.settings.Background)

	case "e":
		m.editingCharset = true
		m.charsetInput.SetValue(m.settings.Charset)
		return m, m.charsetInput.Focus()

	case "s":
		return m, m.saveCmd()
	case "y":
		return m, m.copyCmd()

	default:
		return m, nil
	}

	m.settings = clampSettings(m.settings)
	m.rerender()
	return m, nil
}

func nextBackground(bg ascii.Background) ascii.Background {
	switch bg {
	case ascii.BackgroundDark:
		return ascii.BackgroundLight
	case ascii.BackgroundLight:
		return ascii.BackgroundNone
	default:
		return ascii.BackgroundDark
	}
}

// clampSettings keeps the stepped values inside their valid ranges so
// the status line never shows an out-of-range number. The renderer
// clamps again on its own; this is purely cosmetic.
func clampSettings(s ascii.Settings) ascii.Settings {
	if s.Density < ascii.MinDensity {
		s.Density = ascii.MinDensity
	}
	if s.Density > ascii.MaxDensity {
		s.Density = ascii.MaxDensity
	}
	if s.FontSize < ascii.MinFontSize {
		s.FontSize = ascii.MinFontSize
	}
	if s.FontSize > ascii.MaxFontSize {
		s.FontSize = ascii.MaxFontSize
	}
	if s.Boldness < 0 {
		s.Boldness = 0
	}
	if s.Boldness > 1 {
		s.Boldness = 1
	}
	return s
}
