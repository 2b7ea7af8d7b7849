package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/notilog/internal/logs"
	"github.com/five82/notilog/internal/state"
)

type dialogKind int

const (
	dialogFilter dialogKind = iota
	dialogLevel
)

// noneLabel is the filter choice that clears the tag filter.
const noneLabel = "None"

type choice struct {
	label string
	tag   string
	level logs.Level
}

// choiceDialog is a single-choice list. The filter dialog narrows its tags
// with a text input; the level dialog is a fixed list.
type choiceDialog struct {
	kind    dialogKind
	title   string
	all     []choice
	visible []choice
	cursor  int
	input   textinput.Model
}

func newFilterDialog(tags []string, current string) *choiceDialog {
	all := make([]choice, 0, len(tags)+1)
	all = append(all, choice{label: noneLabel})
	for _, tag := range tags {
		// An empty tag would read as NoFilter.
		if tag == state.NoFilter {
			continue
		}
		all = append(all, choice{label: tag, tag: tag})
	}

	input := textinput.New()
	input.Placeholder = "type to narrow"
	input.Prompt = "/ "
	input.CharLimit = 64
	input.Focus()

	d := &choiceDialog{kind: dialogFilter, title: "Filter by tag", all: all, input: input}
	d.narrow()
	for i, c := range d.visible {
		if c.tag == current {
			d.cursor = i
			break
		}
	}
	return d
}

func newLevelDialog(current logs.Level) *choiceDialog {
	levels := logs.Choices()
	all := make([]choice, 0, len(levels))
	cursor := 0
	for i, l := range levels {
		all = append(all, choice{label: l.String(), level: l})
		if l == current {
			cursor = i
		}
	}
	return &choiceDialog{kind: dialogLevel, title: "Show level", all: all, visible: all, cursor: cursor}
}

// update handles a key. It reports whether the dialog is finished and, if the
// user confirmed, the picked choice.
func (d *choiceDialog) update(msg tea.KeyMsg, keys keyMap) (bool, *choice) {
	switch {
	case key.Matches(msg, keys.Escape):
		return true, nil
	case key.Matches(msg, keys.Confirm):
		if d.cursor < 0 || d.cursor >= len(d.visible) {
			return true, nil
		}
		picked := d.visible[d.cursor]
		return true, &picked
	case msg.Type == tea.KeyUp, d.kind == dialogLevel && key.Matches(msg, keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
		return false, nil
	case msg.Type == tea.KeyDown, d.kind == dialogLevel && key.Matches(msg, keys.Down):
		if d.cursor < len(d.visible)-1 {
			d.cursor++
		}
		return false, nil
	}

	if d.kind == dialogFilter {
		before := d.input.Value()
		d.input, _ = d.input.Update(msg)
		if d.input.Value() != before {
			d.narrow()
			d.cursor = 0
		}
	}
	return false, nil
}

func (d *choiceDialog) narrow() {
	query := strings.ToLower(strings.TrimSpace(d.input.Value()))
	d.visible = d.visible[:0:0]
	for _, c := range d.all {
		if query == "" || c.label == noneLabel && c.tag == "" || strings.Contains(strings.ToLower(c.label), query) {
			d.visible = append(d.visible, c)
		}
	}
}

func (d *choiceDialog) view(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(d.title))
	b.WriteString("\n\n")
	if d.kind == dialogFilter {
		b.WriteString(d.input.View())
		b.WriteString("\n\n")
	}
	for i, c := range d.visible {
		line := "  " + c.label
		if i == d.cursor {
			b.WriteString(styles.Selected.Render("> " + c.label))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter select · esc cancel"))
	return styles.Modal.Width(40).Render(b.String())
}
