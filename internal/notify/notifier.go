package notify

import (
	"errors"
	"log"

	"github.com/five82/notilog/internal/logs"
)

// Action is a trigger attached to a notification.
type Action int

const (
	ActionView Action = iota
	ActionFilter
	ActionLevel
	ActionClear
)

// ID returns the stable key used by surfaces that address actions by name.
func (a Action) ID() string {
	switch a {
	case ActionView:
		return "view"
	case ActionFilter:
		return "filter"
	case ActionLevel:
		return "level"
	case ActionClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Label returns the button text for the action.
func (a Action) Label() string {
	switch a {
	case ActionView:
		return "View"
	case ActionFilter:
		return "Filter"
	case ActionLevel:
		return "Level"
	case ActionClear:
		return "Clear"
	default:
		return ""
	}
}

// ParseAction maps an action ID back to its Action.
func ParseAction(id string) (Action, bool) {
	for _, a := range []Action{ActionView, ActionFilter, ActionLevel, ActionClear} {
		if a.ID() == id {
			return a, true
		}
	}
	return 0, false
}

// Notification is the rendering-ready payload handed to a Presenter.
type Notification struct {
	Title   string
	Icon    string
	Summary Summary
	Actions []Action
	// Tap is the primary action when HasTap is set.
	Tap    Action
	HasTap bool
}

// Presenter displays the persistent notification.
type Presenter interface {
	Present(n Notification) error
	Cancel() error
}

// Options configure a Summarizer.
type Options struct {
	Title    string
	Icon     string
	MaxLines int // zero uses DefaultMaxLines
	// ViewerAvailable enables the view/filter/level/clear triggers.
	ViewerAvailable bool
	Presenter       Presenter
	Toaster         Toaster
}

// Summarizer projects the store's filtered view onto the notification and
// transient-message surfaces. It implements state.Observer.
type Summarizer struct {
	opts  Options
	slots toastSlots
}

// NewSummarizer builds a Summarizer. Nil presenter or toaster disable the
// respective channel.
func NewSummarizer(opts Options) *Summarizer {
	if opts.MaxLines <= 0 {
		opts.MaxLines = DefaultMaxLines
	}
	return &Summarizer{
		opts:  opts,
		slots: toastSlots{toaster: opts.Toaster},
	}
}

// Build assembles the notification for a view without presenting it.
func (s *Summarizer) Build(view []logs.Entry) Notification {
	n := Notification{
		Title:   s.opts.Title,
		Icon:    s.opts.Icon,
		Summary: Summarize(view, s.opts.MaxLines),
	}
	if s.opts.ViewerAvailable {
		n.Actions = []Action{ActionFilter, ActionLevel, ActionClear}
		n.Tap = ActionView
		n.HasTap = true
	}
	return n
}

// Refresh recomputes the summary and pushes it to the presenter.
func (s *Summarizer) Refresh(view []logs.Entry) {
	if s.opts.Presenter == nil {
		return
	}
	if err := s.opts.Presenter.Present(s.Build(view)); err != nil {
		log.Printf("present notification failed: %v", err)
	}
}

// Toast pushes text to the transient channel. Failures are dropped.
func (s *Summarizer) Toast(text string) {
	s.slots.show(text)
}

// Cancel removes the notification.
func (s *Summarizer) Cancel() {
	if s.opts.Presenter == nil {
		return
	}
	if err := s.opts.Presenter.Cancel(); err != nil {
		log.Printf("cancel notification failed: %v", err)
	}
}

// Multi fans a notification out to several presenters.
type Multi []Presenter

// Present forwards n to every presenter and joins their errors.
func (m Multi) Present(n Notification) error {
	var errs []error
	for _, p := range m {
		if err := p.Present(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Cancel cancels on every presenter and joins their errors.
func (m Multi) Cancel() error {
	var errs []error
	for _, p := range m {
		if err := p.Cancel(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
