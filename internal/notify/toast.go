package notify

import "sync"

// Toast is a handle to one shown transient message.
type Toast interface {
	Cancel()
}

// Toaster shows short-lived messages. Show may fail when called from a
// context that cannot display; callers treat that as a dropped message.
type Toaster interface {
	Show(text string) (Toast, error)
}

// ToasterFunc adapts a function to Toaster.
type ToasterFunc func(text string) (Toast, error)

// Show calls f.
func (f ToasterFunc) Show(text string) (Toast, error) {
	return f(text)
}

// toastSlots alternates between two handles. Each call cancels the handle
// shown two calls earlier and reuses its slot, so the previous message is not
// cancelled and immediately replaced in the same slot.
type toastSlots struct {
	mu      sync.Mutex
	toaster Toaster
	handles [2]Toast
	next    int
}

func (t *toastSlots) show(text string) {
	if t.toaster == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	slot := t.next
	t.next = 1 - t.next

	// Display surfaces may panic when driven from the wrong goroutine.
	defer func() { _ = recover() }()

	if prev := t.handles[slot]; prev != nil {
		t.handles[slot] = nil
		prev.Cancel()
	}
	handle, err := t.toaster.Show(text)
	if err != nil {
		return
	}
	t.handles[slot] = handle
}
