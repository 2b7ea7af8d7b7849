package ui

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/notilog/internal/notify"
)

// ErrNotRunning reports that the viewer is not attached to a running program.
var ErrNotRunning = errors.New("viewer not running")

const toastQueue = 16

// Surface presents the notification and toasts inside the viewer. It
// implements notify.Presenter and notify.Toaster. Present and Show never
// block, so they are safe to call while the store lock is held; a pump
// goroutine forwards the latest state to the program.
type Surface struct {
	mu       sync.Mutex
	program  *tea.Program
	latest   notificationMsg
	pending  bool
	nextID   int
	detached bool

	kick   chan struct{}
	events chan tea.Msg
	done   chan struct{}
}

// NewSurface creates a Surface that is not yet attached to a program.
// Notifications presented before Attach are delivered once it runs.
func NewSurface() *Surface {
	return &Surface{
		kick:   make(chan struct{}, 1),
		events: make(chan tea.Msg, toastQueue),
		done:   make(chan struct{}),
	}
}

// Attach starts forwarding to p.
func (s *Surface) Attach(p *tea.Program) {
	s.mu.Lock()
	s.program = p
	pending := s.pending
	s.mu.Unlock()

	go s.pump(p)
	if pending {
		s.wake()
	}
}

// Detach stops forwarding. Later calls return ErrNotRunning.
func (s *Surface) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return
	}
	s.detached = true
	s.program = nil
	close(s.done)
}

// Present records n as the current notification.
func (s *Surface) Present(n notify.Notification) error {
	return s.set(notificationMsg{notification: n, shown: true})
}

// Cancel removes the current notification.
func (s *Surface) Cancel() error {
	return s.set(notificationMsg{})
}

// Show queues a toast. A full queue drops the message.
func (s *Surface) Show(text string) (notify.Toast, error) {
	s.mu.Lock()
	if s.program == nil || s.detached {
		s.mu.Unlock()
		return nil, ErrNotRunning
	}
	s.nextID++
	id := s.nextID
	s.mu.Unlock()

	if !s.post(toastMsg{id: id, text: text}) {
		return nil, errors.New("toast queue full")
	}
	return surfaceToast{s: s, id: id}, nil
}

// Invoke delivers a notification action from another surface, such as the
// desktop notification buttons.
func (s *Surface) Invoke(a notify.Action) {
	s.post(actionMsg{action: a})
}

func (s *Surface) set(msg notificationMsg) error {
	s.mu.Lock()
	if s.detached {
		s.mu.Unlock()
		return ErrNotRunning
	}
	s.latest = msg
	s.pending = true
	attached := s.program != nil
	s.mu.Unlock()

	if attached {
		s.wake()
	}
	return nil
}

func (s *Surface) wake() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

func (s *Surface) post(msg tea.Msg) bool {
	s.mu.Lock()
	detached := s.detached
	s.mu.Unlock()
	if detached {
		return false
	}
	select {
	case s.events <- msg:
		return true
	default:
		return false
	}
}

func (s *Surface) take() (notificationMsg, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending {
		return notificationMsg{}, false
	}
	s.pending = false
	return s.latest, true
}

func (s *Surface) pump(p *tea.Program) {
	for {
		select {
		case <-s.done:
			return
		case <-s.kick:
			if msg, ok := s.take(); ok {
				p.Send(msg)
			}
		case msg := <-s.events:
			p.Send(msg)
		}
	}
}

type surfaceToast struct {
	s  *Surface
	id int
}

func (t surfaceToast) Cancel() {
	t.s.post(toastCancelMsg{id: t.id})
}

// Messages delivered by the Surface.

type notificationMsg struct {
	notification notify.Notification
	shown        bool
}

type toastMsg struct {
	id   int
	text string
}

type toastCancelMsg struct {
	id int
}

type actionMsg struct {
	action notify.Action
}
