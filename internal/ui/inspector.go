// Package ui renders the interactive bitmask inspector.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bitsym/internal/codec"
	"bitsym/internal/flagbits"
	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	remainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

type inspectorModel struct {
	desc      *symbolic.Descriptor
	input     textinput.Model
	namesMode bool
	width     int
}

// NewInspectorModel returns a Bubble Tea model that decomposes values of one
// symbolic type as the user types. Tab switches between entering a raw value
// and entering a comma-separated name list.
func NewInspectorModel(desc *symbolic.Descriptor) tea.Model {
	in := textinput.New()
	in.Placeholder = "value (decimal or 0x hex)"
	in.Focus()
	in.CharLimit = 128
	return &inspectorModel{desc: desc, input: in, width: 80}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.namesMode = !m.namesMode
			if m.namesMode {
				m.input.Placeholder = "names (comma-separated)"
			} else {
				m.input.Placeholder = "value (decimal or 0x hex)"
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s (%s %s)", m.desc.TypeID(), signedness(m.desc.Signed()), m.desc.Width())
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("tab: switch input mode  esc: quit"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	raw, err := m.currentValue()
	if err != nil {
		b.WriteString(remainStyle.Render("  " + err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	dec := flagbits.Decompose(m.desc, raw)
	matched := make(map[string]bool, len(dec.Members))
	for _, mm := range dec.Members {
		matched[mm.Name] = true
	}

	mask := wide.Mask(m.desc.Width().Bits())
	nameWidth := m.nameColumnWidth()
	for _, member := range m.desc.Members() {
		pattern := member.Value.Bits() & mask
		if !flagbits.IsAtomic(pattern) {
			continue
		}
		marker, style := "  ", missStyle
		if matched[member.Name] {
			marker, style = "✓ ", matchStyle
		}
		line := fmt.Sprintf("  %s%s 0x%x", marker, pad(member.Name, nameWidth), pattern)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("  text:  %s", codec.Format(m.desc, raw))))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("  value: %s (0x%x), %d atomic bit(s)",
		raw, raw.Bits()&mask, flagbits.CountSetAtomicBits(m.desc, raw))))
	b.WriteString("\n")
	if dec.Remainder != 0 {
		b.WriteString(remainStyle.Render(fmt.Sprintf("  unrecognized bits: 0x%x", dec.Remainder)))
		b.WriteString("\n")
	}
	return b.String()
}

// currentValue parses the input box per the active mode. Blank input shows
// the zero value rather than an error.
func (m *inspectorModel) currentValue() (wide.Int, error) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return wide.Int{}, nil
	}
	if m.namesMode {
		return codec.Parse(m.desc, text)
	}
	v, err := wide.Parse(text)
	if err != nil {
		return wide.Int{}, fmt.Errorf("not a number: %s", text)
	}
	return v, nil
}

func (m *inspectorModel) nameColumnWidth() int {
	w := 8
	for _, member := range m.desc.Members() {
		if n := runewidth.StringWidth(member.Name); n > w {
			w = n
		}
	}
	if limit := m.width - 16; w > limit && limit > 8 {
		w = limit
	}
	return w
}

func pad(name string, width int) string {
	if runewidth.StringWidth(name) > width {
		return runewidth.Truncate(name, width, "...")
	}
	return runewidth.FillRight(name, width)
}

func signedness(signed bool) string {
	if signed {
		return "signed"
	}
	return "unsigned"
}
