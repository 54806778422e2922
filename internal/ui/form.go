package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is one labeled form entry: a single-line input or, when area is
// non-nil, a multi-line textarea (used for exercise instructions).
type field struct {
	label string
	input textinput.Model
	area  *textarea.Model
}

func newField(label, placeholder, value string) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 48
	in.SetValue(value)
	return field{label: label, input: in}
}

func newAreaField(label, value string) field {
	ar := textarea.New()
	ar.Placeholder = "One step per line"
	ar.SetWidth(50)
	ar.SetHeight(4)
	ar.SetValue(value)
	return field{label: label, area: &ar}
}

func (f *field) value() string {
	if f.area != nil {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *field) focus() tea.Cmd {
	if f.area != nil {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *field) blur() {
	if f.area != nil {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

// form is an ordered set of fields with a single focus.
type form struct {
	title  string
	fields []field
	focus  int
}

func newForm(title string, fields ...field) form {
	f := form{title: title, fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].focus()
	}
	return f
}

func (f *form) focused() *field {
	if len(f.fields) == 0 {
		return nil
	}
	return &f.fields[f.focus]
}

func (f *form) next() tea.Cmd {
	f.fields[f.focus].blur()
	f.focus = (f.focus + 1) % len(f.fields)
	return f.fields[f.focus].focus()
}

func (f *form) prev() tea.Cmd {
	f.fields[f.focus].blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	fld := f.focused()
	if fld == nil {
		return nil
	}
	var cmd tea.Cmd
	if fld.area != nil {
		*fld.area, cmd = fld.area.Update(msg)
	} else {
		fld.input, cmd = fld.input.Update(msg)
	}
	return cmd
}

func (f *form) view(s Styles) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(f.title))
	b.WriteString("\n\n")
	for i := range f.fields {
		fld := &f.fields[i]
		b.WriteString(s.Label.Render(fld.label))
		if fld.area != nil {
			b.WriteString("\n")
			b.WriteString(fld.area.View())
		} else {
			b.WriteString(fld.input.View())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render("tab/shift+tab move · ctrl+s submit · esc cancel"))
	return s.Box.Render(b.String())
}
