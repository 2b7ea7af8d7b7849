package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/notilog/internal/logs"
	"github.com/five82/notilog/internal/notify"
	"github.com/five82/notilog/internal/state"
)

type themeRecorder struct{ names []string }

func (r *themeRecorder) PutTheme(name string) error {
	r.names = append(r.names, name)
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func readyModel(t *testing.T, store *state.Store) Model {
	t.Helper()
	m := New(Options{Store: store})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return update(t, m, viewMsg(store.FilteredView()))
}

func seededStore() *state.Store {
	store := state.New(state.DefaultOptions())
	store.Record(logs.Info, "A", "first")
	store.Record(logs.Warn, "Net", "slow")
	store.Record(logs.Debug, "B", "third")
	return store
}

func TestView_ListsFilteredEntriesNewestFirst(t *testing.T) {
	m := readyModel(t, seededStore())

	out := m.View()
	third := strings.Index(out, "third")
	first := strings.Index(out, "first")
	if third < 0 || first < 0 || third > first {
		t.Fatalf("View() should list third before first:\n%s", out)
	}
	if !strings.Contains(out, "3 shown") {
		t.Fatalf("View() missing count:\n%s", out)
	}
}

func TestLevelDialog_SetsStoreLevel(t *testing.T) {
	store := seededStore()
	m := readyModel(t, store)

	m = update(t, m, runes("l"))
	if m.dialog == nil || m.dialog.kind != dialogLevel {
		t.Fatalf("dialog = %#v, want level dialog", m.dialog)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.dialog != nil {
		t.Fatal("dialog still open after enter")
	}
	if got := store.Level(); got != logs.Info {
		t.Fatalf("Level() = %v, want Info", got)
	}
}

func TestLevelDialog_EscapeKeepsLevel(t *testing.T) {
	store := seededStore()
	m := readyModel(t, store)

	m = update(t, m, runes("l"))
	m = update(t, m, runes("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.dialog != nil {
		t.Fatal("dialog still open after esc")
	}
	if got := store.Level(); got != logs.Verbose {
		t.Fatalf("Level() = %v, want Verbose", got)
	}
}

func TestFilterDialog_NarrowsAndSelects(t *testing.T) {
	store := seededStore()
	m := readyModel(t, store)

	m = update(t, m, runes("f"))
	if m.dialog == nil || m.dialog.kind != dialogFilter {
		t.Fatalf("dialog = %#v, want filter dialog", m.dialog)
	}
	if got := len(m.dialog.visible); got != 4 {
		t.Fatalf("visible choices = %d, want None plus 3 tags", got)
	}

	m = update(t, m, runes("n"))
	m = update(t, m, runes("e"))
	if got := len(m.dialog.visible); got != 2 {
		t.Fatalf("visible choices after narrowing = %d, want 2", got)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := store.Filter(); got != "Net" {
		t.Fatalf("Filter() = %q, want Net", got)
	}

	m = update(t, m, runes("f"))
	if m.dialog.visible[m.dialog.cursor].tag != "Net" {
		t.Fatalf("cursor should start on the current filter")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := store.Filter(); got != state.NoFilter {
		t.Fatalf("Filter() = %q, want none", got)
	}
}

func TestFilterDialog_SkipsEmptyTag(t *testing.T) {
	d := newFilterDialog([]string{"", "A"}, state.NoFilter)

	if got := len(d.visible); got != 2 {
		t.Fatalf("visible choices = %d, want None and A", got)
	}
	if d.visible[0].label != noneLabel || d.visible[1].tag != "A" {
		t.Fatalf("visible = %#v, want None then A", d.visible)
	}
	if d.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 on None", d.cursor)
	}
}

func TestClearKey_EmptiesStoreKeepsTags(t *testing.T) {
	store := seededStore()
	m := readyModel(t, store)

	update(t, m, runes("c"))
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}
	if got := len(store.TagOptions()); got != 3 {
		t.Fatalf("TagOptions() = %d tags, want 3", got)
	}
}

func TestToggleKeys(t *testing.T) {
	store := seededStore()
	m := readyModel(t, store)

	m = update(t, m, runes("t"))
	if !store.ToastsEnabled() {
		t.Fatal("toasts should be enabled after t")
	}
	update(t, m, runes("n"))
	if store.NotificationsEnabled() {
		t.Fatal("notifications should be disabled after n")
	}
}

// viewFrom runs cmd and any batched commands and returns the first view read.
func viewFrom(t *testing.T, cmd tea.Cmd) viewMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("command is nil, want a view fetch")
	}
	switch msg := cmd().(type) {
	case viewMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if v, ok := c().(viewMsg); ok {
				return v
			}
		}
	}
	t.Fatal("no view fetched")
	return nil
}

func TestRefreshTick_PicksUpRecordsWithNotificationsOff(t *testing.T) {
	surface := NewSurface()
	opts := state.DefaultOptions()
	opts.Observer = notify.NewSummarizer(notify.Options{Presenter: surface, ViewerAvailable: true})
	store := state.New(opts)
	m := New(Options{Store: store, Surface: surface, RefreshEvery: time.Millisecond})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	m = update(t, m, runes("n"))
	_, _ = surface.take()
	store.Record(logs.Info, "A", "new entry")
	if _, pending := surface.take(); pending {
		t.Fatal("no notification should be pushed while notifications are off")
	}

	_, cmd := m.Update(refreshMsg(time.Now()))
	m = update(t, m, viewFrom(t, cmd))
	if len(m.view) != 1 || m.view[0].Text != "new entry" {
		t.Fatalf("view = %#v, want the new entry", m.view)
	}
	if !strings.Contains(m.View(), "1 shown") {
		t.Fatalf("View() missing count:\n%s", m.View())
	}
}

func TestRefreshKey_RereadsView(t *testing.T) {
	store := seededStore()
	m := readyModel(t, store)
	store.Record(logs.Error, "C", "late")

	_, cmd := m.Update(runes("r"))
	if got := len(viewFrom(t, cmd)); got != 4 {
		t.Fatalf("refreshed view = %d entries, want 4", got)
	}
}

func TestActionMsg_OpensDialogs(t *testing.T) {
	m := readyModel(t, seededStore())
	m = update(t, m, actionMsg{action: notify.ActionLevel})
	if m.dialog == nil || m.dialog.kind != dialogLevel {
		t.Fatalf("dialog = %#v, want level dialog", m.dialog)
	}
}

func TestCycleTheme_SavesChoice(t *testing.T) {
	rec := &themeRecorder{}
	m := New(Options{Store: seededStore(), Prefs: rec})
	m = update(t, m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if len(rec.names) != 1 || rec.names[0] != "Kanagawa" {
		t.Fatalf("saved themes = %v, want [Kanagawa]", rec.names)
	}
}

func TestToasts_KeepTwoAndCancel(t *testing.T) {
	m := readyModel(t, seededStore())
	m = update(t, m, toastMsg{id: 1, text: "one"})
	m = update(t, m, toastMsg{id: 2, text: "two"})
	m = update(t, m, toastMsg{id: 3, text: "three"})
	if len(m.toasts) != 2 || m.toasts[0].id != 2 || m.toasts[1].id != 3 {
		t.Fatalf("toasts = %#v, want ids 2 and 3", m.toasts)
	}

	m = update(t, m, toastCancelMsg{id: 2})
	if len(m.toasts) != 1 || m.toasts[0].text != "three" {
		t.Fatalf("toasts = %#v, want only three", m.toasts)
	}
	if !strings.Contains(m.View(), "three") {
		t.Fatal("View() missing toast text")
	}
}

func TestNotificationMsg_UpdatesHeader(t *testing.T) {
	m := readyModel(t, seededStore())
	n := notify.Notification{Summary: notify.Summary{Headline: "third", Lines: []string{"third"}, Count: 3}}
	m = update(t, m, notificationMsg{notification: n, shown: true})
	if got := m.headerLine(); got != "Log (3) · third" {
		t.Fatalf("headerLine() = %q", got)
	}
	m = update(t, m, notificationMsg{})
	if got := m.headerLine(); got != "Log" {
		t.Fatalf("headerLine() after cancel = %q, want Log", got)
	}
}

func TestSurface_UnattachedShowIsNotRunning(t *testing.T) {
	s := NewSurface()
	if _, err := s.Show("x"); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Show error = %v, want ErrNotRunning", err)
	}
	if err := s.Present(notify.Notification{Title: "early"}); err != nil {
		t.Fatalf("Present before attach: %v", err)
	}
	msg, ok := s.take()
	if !ok || !msg.shown || msg.notification.Title != "early" {
		t.Fatalf("take() = %#v, %v, want early notification", msg, ok)
	}
	if _, ok := s.take(); ok {
		t.Fatal("take() should report nothing pending after delivery")
	}
}

func TestSurface_PresentNeverBlocksAndKeepsLatest(t *testing.T) {
	s := NewSurface()
	s.program = &tea.Program{}

	for i := 0; i < 100; i++ {
		if err := s.Present(notify.Notification{Summary: notify.Summary{Count: i}}); err != nil {
			t.Fatalf("Present: %v", err)
		}
	}
	msg, ok := s.take()
	if !ok || msg.notification.Summary.Count != 99 {
		t.Fatalf("take() = %#v, want latest notification", msg)
	}
	if err := s.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if msg, _ := s.take(); msg.shown {
		t.Fatal("Cancel should leave a hidden notification pending")
	}
}

func TestSurface_ToastQueueDropsWhenFull(t *testing.T) {
	s := NewSurface()
	s.program = &tea.Program{}

	for i := 0; i < toastQueue; i++ {
		if _, err := s.Show("x"); err != nil {
			t.Fatalf("Show %d: %v", i, err)
		}
	}
	if _, err := s.Show("overflow"); err == nil {
		t.Fatal("Show should fail when the queue is full")
	}
}

func TestSurface_DetachRejectsCalls(t *testing.T) {
	s := NewSurface()
	s.Detach()
	s.Detach()
	if err := s.Present(notify.Notification{}); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Present error = %v, want ErrNotRunning", err)
	}
}

func TestThemes(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox", got)
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, l := range append(logs.Choices(), logs.WTF) {
			if th.LevelColors[l] == "" {
				t.Fatalf("theme %s has no color for %v", name, l)
			}
		}
	}
}
