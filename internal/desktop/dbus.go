// Package desktop presents the log notification through the freedesktop
// notification service on the D-Bus session bus.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/five82/notilog/internal/notify"
)

const (
	busName       = "org.freedesktop.Notifications"
	busPath       = dbus.ObjectPath("/org/freedesktop/Notifications")
	busInterface  = "org.freedesktop.Notifications"
	methodNotify  = busInterface + ".Notify"
	methodClose   = busInterface + ".CloseNotification"
	methodCaps    = busInterface + ".GetCapabilities"
	signalAction  = busInterface + ".ActionInvoked"
	defaultAction = "default"

	// Persistent notification never expires; toasts use the short timeout.
	timeoutNever = int32(0)
	timeoutToast = int32(2000)

	// Bus calls run under the log store's lock.
	defaultCallTimeout = 500 * time.Millisecond
)

// ErrUnavailable reports that no notification service can be reached.
var ErrUnavailable = errors.New("desktop notifications unavailable")

type caller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Notifier keeps one persistent desktop notification up to date and shows
// toasts as separate short-lived notifications. It implements
// notify.Presenter and notify.Toaster.
type Notifier struct {
	appName string
	obj     caller
	conn    *dbus.Conn
	timeout time.Duration

	mu       sync.Mutex
	id       uint32
	tap      notify.Action
	hasTap   bool
	onAction func(notify.Action)
	closed   bool

	signals chan *dbus.Signal
	done    chan struct{}
}

// Connect opens the session bus and checks that a notification service is
// listening. onAction, if non-nil, receives the actions the user invokes on
// the persistent notification; it runs on the signal goroutine.
func Connect(appName string, onAction func(notify.Action)) (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: connect session bus: %v", ErrUnavailable, err)
	}

	n := newNotifier(appName, conn.Object(busName, busPath))
	if err := n.call(methodCaps).Err; err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: query capabilities: %v", ErrUnavailable, err)
	}
	n.conn = conn
	n.onAction = onAction

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(busPath),
		dbus.WithMatchInterface(busInterface),
		dbus.WithMatchMember("ActionInvoked"),
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("subscribe actions: %w", err)
	}
	conn.Signal(n.signals)
	go n.listen()

	return n, nil
}

func newNotifier(appName string, obj caller) *Notifier {
	return &Notifier{
		appName: appName,
		obj:     obj,
		timeout: defaultCallTimeout,
		signals: make(chan *dbus.Signal, 16),
		done:    make(chan struct{}),
	}
}

// Present creates or replaces the persistent notification.
func (n *Notifier) Present(notif notify.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrUnavailable
	}

	actions := make([]string, 0, 2*(len(notif.Actions)+1))
	if notif.HasTap {
		actions = append(actions, defaultAction, notif.Tap.Label())
	}
	for _, a := range notif.Actions {
		actions = append(actions, a.ID(), a.Label())
	}

	hints := map[string]dbus.Variant{
		"resident": dbus.MakeVariant(true),
		"urgency":  dbus.MakeVariant(byte(0)),
		"category": dbus.MakeVariant("x-notilog.log"),
	}

	var id uint32
	call := n.call(methodNotify,
		n.appName, n.id, notif.Icon, title(notif), body(notif.Summary),
		actions, hints, timeoutNever)
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	n.id = id
	n.tap = notif.Tap
	n.hasTap = notif.HasTap
	return nil
}

// Cancel closes the persistent notification if one is shown.
func (n *Notifier) Cancel() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.id == 0 {
		return nil
	}
	id := n.id
	n.id = 0
	if err := n.call(methodClose, id).Err; err != nil {
		return fmt.Errorf("close notification: %w", err)
	}
	return nil
}

// Show displays text as a short-lived notification.
func (n *Notifier) Show(text string) (notify.Toast, error) {
	n.mu.Lock()
	closed := n.closed
	n.mu.Unlock()
	if closed {
		return nil, ErrUnavailable
	}

	var id uint32
	call := n.call(methodNotify,
		n.appName, uint32(0), "", n.appName, text,
		[]string{}, map[string]dbus.Variant{"transient": dbus.MakeVariant(true)}, timeoutToast)
	if err := call.Store(&id); err != nil {
		return nil, fmt.Errorf("notify toast: %w", err)
	}
	return toast{n: n, id: id}, nil
}

// Close stops listening for actions and releases the bus connection. The
// persistent notification is left in place.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	if n.conn == nil {
		return nil
	}
	n.conn.RemoveSignal(n.signals)
	return n.conn.Close()
}

// call invokes method on the notification service, giving up after the
// notifier's timeout.
func (n *Notifier) call(method string, args ...interface{}) *dbus.Call {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()
	return n.obj.CallWithContext(ctx, method, 0, args...)
}

func (n *Notifier) listen() {
	for {
		select {
		case <-n.done:
			return
		case sig, ok := <-n.signals:
			if !ok {
				return
			}
			n.handleSignal(sig)
		}
	}
}

func (n *Notifier) handleSignal(sig *dbus.Signal) {
	if sig == nil || sig.Name != signalAction || len(sig.Body) < 2 {
		return
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return
	}
	key, ok := sig.Body[1].(string)
	if !ok {
		return
	}

	n.mu.Lock()
	if id == 0 || id != n.id {
		n.mu.Unlock()
		return
	}
	var action notify.Action
	var found bool
	if key == defaultAction {
		action, found = n.tap, n.hasTap
	} else {
		action, found = notify.ParseAction(key)
	}
	cb := n.onAction
	n.mu.Unlock()

	if found && cb != nil {
		cb(action)
	}
}

type toast struct {
	n  *Notifier
	id uint32
}

func (t toast) Cancel() {
	if t.id == 0 {
		return
	}
	_ = t.n.call(methodClose, t.id).Err
}

func title(n notify.Notification) string {
	if n.Summary.Empty() {
		return n.Title
	}
	return fmt.Sprintf("%s (%d)", n.Title, n.Summary.Count)
}

func body(s notify.Summary) string {
	if s.Empty() {
		return "No entries"
	}
	return strings.Join(s.Lines, "\n")
}
