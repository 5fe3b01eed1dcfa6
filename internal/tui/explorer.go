package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rfcalc/internal/analysis"
	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/viz"
)

const (
	DefaultFrequency = 1e9

	minFrequency = 1.0
	maxFrequency = 1e12
	sparkWidth   = 48
)

// Overview sweep behind the detail sparkline.
var overview = analysis.Sweep{Start: 1e6, Stop: 1e10, Points: sparkWidth, Log: true}

type state int

const (
	stateList state = iota
	stateDetail
)

type styles struct {
	accent, text, dim, dimmer, value, warn lipgloss.Style
}

func stylesFor(t viz.Theme) styles {
	return styles{
		accent: lipgloss.NewStyle().Foreground(t.Primary),
		text:   lipgloss.NewStyle().Foreground(t.Text),
		dim:    lipgloss.NewStyle().Foreground(t.Muted),
		dimmer: lipgloss.NewStyle().Foreground(t.Muted).Faint(true),
		value:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		warn:   lipgloss.NewStyle().Foreground(t.Warn),
	}
}

type model struct {
	state  state
	cursor int
	names  []string

	medium material.Medium
	freq   float64
	spark  []float64
	status string

	editing bool
	editBuf string

	theme  int
	width  int
	height int
}

// NewExplorer returns the material explorer model. A known initial
// material opens straight into its detail view.
func NewExplorer(initial string, freq float64, theme string) tea.Model {
	m := model{
		names:  material.Names(),
		freq:   DefaultFrequency,
		theme:  viz.ThemeIndex(theme),
		width:  80,
		height: 24,
	}
	if freq >= minFrequency && freq <= maxFrequency {
		m.freq = freq
	}
	for i, name := range m.names {
		if name == initial {
			m.cursor = i
			m.open()
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if msg.String() == "t" && !m.editing {
		m.theme = (m.theme + 1) % len(viz.Themes)
		return m, nil
	}
	switch m.state {
	case stateList:
		return m.listKey(msg)
	case stateDetail:
		if m.editing {
			return m.editKey(msg)
		}
		return m.detailKey(msg)
	}
	return m, nil
}

func (m model) listKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.open()
	}
	return m, nil
}

func (m model) detailKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.state = stateList
		m.status = ""
	case "f", "enter":
		m.editing = true
		m.editBuf = ""
		m.status = ""
	case "left", "h":
		m.freq = math.Max(m.freq/10, minFrequency)
	case "right", "l":
		m.freq = math.Min(m.freq*10, maxFrequency)
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		f, err := viz.ParseSI(m.editBuf)
		switch {
		case err != nil:
			m.status = err.Error()
		case f < minFrequency || f > maxFrequency:
			m.status = fmt.Sprintf("frequency must be between %s and %s",
				viz.FormatSI(minFrequency, "Hz"), viz.FormatSI(maxFrequency, "Hz"))
		default:
			m.freq = f
		}
		m.editing = false
		m.editBuf = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.editBuf += string(msg.Runes)
		}
	}
	return m, nil
}

// open loads the material under the cursor and its overview sweep.
func (m *model) open() {
	med, err := material.FromName(m.names[m.cursor])
	if err != nil {
		m.status = err.Error()
		return
	}
	m.medium = med
	m.state = stateDetail
	m.status = ""
	m.spark = nil
	if res, err := analysis.RunMedium(med, overview, []string{sparkQuantity(med)}); err == nil {
		m.spark = res.Series[sparkQuantity(med)]
	}
}

func sparkQuantity(med material.Medium) string {
	if med.Conductivity() > 0 {
		return "skin_depth"
	}
	return "attenuation_db"
}

func (m model) View() string {
	s := stylesFor(viz.Themes[m.theme])
	if m.state == stateDetail {
		return m.viewDetail(s)
	}
	return m.viewList(s)
}

func (m model) viewList(s styles) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + s.accent.Render("r f c a l c") + "\n")
	b.WriteString(s.dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	// Keep the cursor on screen for short terminals.
	rows := max(m.height-10, 5)
	first := 0
	if m.cursor >= rows {
		first = m.cursor - rows + 1
	}
	last := min(first+rows, len(m.names))

	for i := first; i < last; i++ {
		name := m.names[i]
		rec, _ := material.Lookup(name)
		desc := fmt.Sprintf("εr %-6g tanδ %g", rec.RelativePermittivity, rec.LossTangent)
		if rec.IsConductor() {
			desc = "σ " + viz.FormatSI(rec.Conductivity, "S/m")
		}
		if i == m.cursor {
			b.WriteString("      " + s.accent.Render("▸ ") + s.text.Render(fmt.Sprintf("%-22s", name)) + s.dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + s.dim.Render(fmt.Sprintf("%-22s", name)) + s.dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.dim.Render("      ↑↓ select   enter open   t theme   q quit") + "\n")
	return b.String()
}

func (m model) viewDetail(s styles) string {
	var b strings.Builder
	med := m.medium

	b.WriteString("\n")
	b.WriteString("      " + s.accent.Render(med.Name()) + "  " +
		s.dim.Render(fmt.Sprintf("εr %g  µr %g  tanδ %g  σ %s",
			med.RelativePermittivity(), med.RelativePermeability(),
			med.LossTangent(), viz.FormatSI(med.Conductivity(), "S/m"))) + "\n")
	b.WriteString(s.dimmer.Render("      "+strings.Repeat("─", 52)) + "\n\n")

	freq := viz.FormatSI(m.freq, "Hz")
	if m.editing {
		freq = m.editBuf + "▋"
	}
	b.WriteString("      " + s.text.Render(fmt.Sprintf("%-20s", "frequency")) + s.value.Render(freq) + "\n\n")

	reg := analysis.Default()
	for _, q := range reg.ListMedium() {
		label := fmt.Sprintf("%-20s", q.Name)
		v, err := reg.EvalMedium(q.Name, med, m.freq)
		if err != nil {
			b.WriteString("        " + s.dim.Render(label) + s.dimmer.Render("undefined") + "\n")
			continue
		}
		b.WriteString("        " + s.dim.Render(label) + s.text.Render(viz.FormatSI(v, q.Unit)) + "\n")
	}

	b.WriteString("\n")
	if len(m.spark) > 0 {
		b.WriteString("      " + s.dim.Render(fmt.Sprintf("%-20s", sparkQuantity(med))) +
			viz.SparklineChart(m.spark, sparkWidth) + "\n")
		b.WriteString("      " + strings.Repeat(" ", 20) + s.dimmer.Render(fmt.Sprintf("%-*s%s",
			sparkWidth-len(viz.FormatSI(overview.Stop, "Hz")),
			viz.FormatSI(overview.Start, "Hz"), viz.FormatSI(overview.Stop, "Hz"))) + "\n\n")
	}

	if m.status != "" {
		b.WriteString("      " + s.warn.Render(m.status) + "\n\n")
	}

	if m.editing {
		b.WriteString(s.dim.Render("      type a frequency (2.4G, 10 MHz)   enter set   esc cancel") + "\n")
	} else {
		b.WriteString(s.dim.Render("      ←→ ÷×10   f edit   t theme   esc back") + "\n")
	}
	return b.String()
}

// RunExplorer starts the interactive material explorer.
func RunExplorer(initial string, freq float64, theme string) error {
	p := tea.NewProgram(NewExplorer(initial, freq, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
