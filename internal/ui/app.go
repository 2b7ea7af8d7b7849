package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/notilog/internal/logs"
	"github.com/five82/notilog/internal/notify"
	"github.com/five82/notilog/internal/render"
	"github.com/five82/notilog/internal/state"
)

// ThemeSaver persists the chosen theme.
type ThemeSaver interface {
	PutTheme(name string) error
}

// Options configures the viewer.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Surface   *Surface
	ThemeName string
	Prefs     ThemeSaver
	Title     string
	// ToastTimeout is how long a toast stays on screen; zero uses 2s.
	ToastTimeout time.Duration
	// RefreshEvery re-reads the filtered view; zero uses 1s.
	RefreshEvery time.Duration
	// InputTTY reads keys from the controlling terminal when stdin is a pipe.
	InputTTY bool
}

const defaultRefreshEvery = time.Second

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx    context.Context
	store  *state.Store
	prefs  ThemeSaver
	keys   keyMap
	title  string
	expiry time.Duration
	every  time.Duration

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	view         []logs.Entry
	notification notify.Notification
	shown        bool
	lastUpdated  time.Time

	logViewport viewport.Model
	toasts      []toastMsg

	showHelp bool
	dialog   *choiceDialog
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	expiry := opts.ToastTimeout
	if expiry <= 0 {
		expiry = 2 * time.Second
	}

	every := opts.RefreshEvery
	if every <= 0 {
		every = defaultRefreshEvery
	}

	title := opts.Title
	if title == "" {
		title = "Log"
	}

	return Model{
		ctx:    ctx,
		store:  opts.Store,
		prefs:  opts.Prefs,
		keys:   DefaultKeyMap(),
		title:  title,
		expiry: expiry,
		every:  every,
		theme:  GetTheme(themeName),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForDone(m.ctx)}
	if m.store != nil {
		cmds = append(cmds, fetchViewCmd(m.store), refreshTick(m.every))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.logViewport = viewport.New(m.width, m.bodyHeight())
		}
		m.ready = true
		m.logViewport.Width = m.width
		m.logViewport.Height = m.bodyHeight()
		m.updateLogViewport()
		return m, nil

	case notificationMsg:
		m.notification = msg.notification
		m.shown = msg.shown
		return m, fetchViewCmd(m.store)

	case refreshMsg:
		return m, tea.Batch(fetchViewCmd(m.store), refreshTick(m.every))

	case viewMsg:
		m.view = msg
		m.lastUpdated = time.Now()
		m.updateLogViewport()
		return m, nil

	case toastMsg:
		m.toasts = append(m.toasts, msg)
		if len(m.toasts) > 2 {
			m.toasts = m.toasts[len(m.toasts)-2:]
		}
		return m, expireToastCmd(msg.id, m.expiry)

	case toastCancelMsg:
		m.dropToast(msg.id)
		return m, nil

	case actionMsg:
		return m.runAction(msg.action)

	case doneMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.dialog != nil {
		return m.place(m.dialog.view(m.theme.Styles()))
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefs != nil {
			_ = m.prefs.PutTheme(m.theme.Name)
		}
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, fetchViewCmd(m.store)

	case key.Matches(msg, m.keys.Filter):
		return m.runAction(notify.ActionFilter)

	case key.Matches(msg, m.keys.Level):
		return m.runAction(notify.ActionLevel)

	case key.Matches(msg, m.keys.Clear):
		return m.runAction(notify.ActionClear)

	case key.Matches(msg, m.keys.ToggleToasts):
		if m.store != nil {
			m.store.SetToastsEnabled(!m.store.ToastsEnabled())
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleNotifications):
		if m.store != nil {
			enabled := !m.store.NotificationsEnabled()
			m.store.SetNotificationsEnabled(enabled)
			if enabled {
				m.store.Refresh()
			} else {
				m.store.Close()
			}
		}
		return m, nil
	}

	return m.handleScrollKey(msg)
}

func (m Model) handleScrollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.logViewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.logViewport.LineDown(1)
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.ViewDown()
	}
	return m, nil
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, picked := m.dialog.update(msg, m.keys)
	if !done {
		return m, nil
	}
	kind := m.dialog.kind
	m.dialog = nil
	if picked == nil || m.store == nil {
		return m, nil
	}
	switch kind {
	case dialogFilter:
		m.store.SetFilter(picked.tag)
	case dialogLevel:
		m.store.SetLevel(picked.level)
	}
	return m, fetchViewCmd(m.store)
}

// runAction performs a notification action. View needs nothing beyond the
// viewer already being on screen.
func (m Model) runAction(a notify.Action) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	m.showHelp = false
	switch a {
	case notify.ActionFilter:
		m.dialog = newFilterDialog(m.store.TagOptions(), m.store.Filter())
	case notify.ActionLevel:
		m.dialog = newLevelDialog(m.store.Level())
	case notify.ActionClear:
		m.store.Clear()
		return m, fetchViewCmd(m.store)
	}
	return m, nil
}

func (m *Model) dropToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

func (m Model) bodyHeight() int {
	// header, status line and footer
	return max(1, m.height-3)
}

func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	styles := m.theme.Styles()
	var b strings.Builder
	for i, e := range m.view {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.LevelStyle(e.Level).Render(render.Line(e)))
	}
	if len(m.view) == 0 {
		b.WriteString(styles.FaintText.Render("No entries"))
	}
	m.logViewport.SetContent(b.String())
}

// renderMain renders the header, the entry list and the footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Header.Width(m.width).Render(m.headerLine()))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.logViewport.View())
	b.WriteString("\n")
	if toasts := m.renderToasts(styles); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}
	b.WriteString(styles.Footer.Width(m.width).Render("f filter · l level · c clear · r refresh · t toasts · n notification · h help · q quit"))
	return b.String()
}

func (m Model) headerLine() string {
	if !m.shown {
		return m.title
	}
	s := m.notification.Summary
	if s.Empty() {
		return m.title + " · no entries"
	}
	head := fmt.Sprintf("%s (%d) · ", m.title, s.Count)
	return head + truncate(s.Headline, m.width-len([]rune(head))-2)
}

func (m Model) statusLine() string {
	level, filter := logs.Verbose, noneLabel
	toasts, notifications := false, false
	if m.store != nil {
		level = m.store.Level()
		if f := m.store.Filter(); f != state.NoFilter {
			filter = f
		}
		toasts = m.store.ToastsEnabled()
		notifications = m.store.NotificationsEnabled()
	}
	line := fmt.Sprintf("level %s · tag %s · %d shown · notification %s · toasts %s",
		level, filter, len(m.view), onOff(notifications), onOff(toasts))
	if !m.lastUpdated.IsZero() {
		line += " · updated " + m.lastUpdated.Format("15:04:05")
	}
	return line
}

func (m Model) renderToasts(styles Styles) string {
	if len(m.toasts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		parts = append(parts, styles.Toast.Render(t.text))
	}
	return strings.Join(parts, " ")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Messages

type viewMsg []logs.Entry

type refreshMsg time.Time

type doneMsg struct{}

// Commands

func fetchViewCmd(store *state.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return viewMsg(store.FilteredView())
	}
}

// refreshTick keeps the list current when no notification is pushed, e.g.
// with notifications off or no terminal presenter.
func refreshTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func expireToastCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastCancelMsg{id: id}
	})
}

func waitForDone(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return doneMsg{}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.InputTTY {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(m, programOpts...)
	if opts.Surface != nil {
		opts.Surface.Attach(p)
		defer opts.Surface.Detach()
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
