package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// form is the stack of labelled text inputs behind every editable page.
// tab and shift+tab move the focus; other keys go to the focused input.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
	charLimit   int
}

func newForm(specs ...fieldSpec) form {
	f := form{
		labels: make([]string, len(specs)),
		inputs: make([]textinput.Model, len(specs)),
	}
	for i, spec := range specs {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.Width = 40
		if spec.charLimit > 0 {
			in.CharLimit = spec.charLimit
		}
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = spec.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// handleKey moves the focus on tab and shift+tab and reports whether it
// consumed the key.
func (f *form) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab", "down":
		f.focusOn((f.focus + 1) % len(f.inputs))
		return true
	case "shift+tab", "up":
		f.focusOn((f.focus - 1 + len(f.inputs)) % len(f.inputs))
		return true
	}
	return false
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) focusOn(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f form) value(i int) string {
	return f.inputs[i].Value()
}

func (f form) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.focusOn(0)
}

func (f form) view() string {
	labelWidth := lipgloss.Width("Field")
	for _, l := range f.labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Value\n", labelWidth, "Field"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", labelWidth, f.labels[i], in.View()))
	}
	return b.String()
}

// submitButton renders the submit line of a form.
func submitButton(label string, submitting bool) string {
	if submitting {
		return "\n[" + label + "...]\n"
	}
	return "\n[" + label + "]\n"
}

const formHotKeys = "esc: back │ tab: next field │ enter: submit"
