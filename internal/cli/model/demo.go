// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tabwell/tabwell/internal/application/usecase"
	"github.com/tabwell/tabwell/internal/cli/styles"
	"github.com/tabwell/tabwell/internal/domain/entity"
	"github.com/tabwell/tabwell/internal/domain/policy"
	"github.com/tabwell/tabwell/internal/infrastructure/config"
	"github.com/tabwell/tabwell/internal/strip"
)

const maxVisibleSignals = 6

// ConfigReloadedMsg carries a freshly reloaded configuration into the
// update loop.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// DemoModel is the Bubble Tea model for the interactive strip demo. It
// opens several simulated windows over one shared pinned sequence and
// drives the engine with browser-like keybindings.
type DemoModel struct {
	help  help.Model
	keys  demoKeyMap
	theme *styles.Theme

	state *demoState

	width  int
	height int
}

// demoState is shared by value copies of the model; the demo runs on the
// Bubble Tea update loop, a single goroutine.
type demoState struct {
	ctx     context.Context
	windows []*strip.Coordinator
	focused int
	signals []string
}

type demoKeyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	FirstTab   key.Binding
	LastTab    key.Binding
	NewTab     key.Binding
	NewChild   key.Binding
	Duplicate  key.Binding
	Close      key.Binding
	Reopen     key.Binding
	Pin        key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding
	NextWindow key.Binding
	Transfer   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k demoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.NewTab, k.Close, k.Pin, k.NextWindow, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k demoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.FirstTab, k.LastTab},
		{k.NewTab, k.NewChild, k.Duplicate, k.Close, k.Reopen},
		{k.Pin, k.MoveLeft, k.MoveRight},
		{k.NextWindow, k.Transfer, k.Help, k.Quit},
	}
}

func defaultDemoKeyMap() demoKeyMap {
	return demoKeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("→/l", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("←/h", "prev tab"),
		),
		FirstTab: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first tab"),
		),
		LastTab: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last tab"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new tab"),
		),
		NewChild: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "new child tab"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "duplicate tab"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close tab"),
		),
		Reopen: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "reopen closed"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin/unpin"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("shift+←/H", "move tab left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("shift+→/L", "move tab right"),
		),
		NextWindow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "next window"),
		),
		Transfer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "send tab to next window"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewDemo builds the demo: cfg.Demo.Windows simulated windows over one
// shared pinned sequence, seeded with a few tabs so there is something to
// play with.
func NewDemo(ctx context.Context, cfg *config.Config, theme *styles.Theme) DemoModel {
	st := &demoState{ctx: ctx}

	pinned := entity.NewTabCollection()
	selectionUC := usecase.NewManageSelectionUseCase(policy.Default())

	for i := 0; i < cfg.Demo.Windows; i++ {
		windowID := fmt.Sprintf("window-%d", i+1)
		co := strip.NewCoordinator(ctx, strip.Config{
			WindowID:    windowID,
			Pinned:      pinned,
			SelectionUC: selectionUC,
			IDGenerator: uuid.NewString,
			Now:         time.Now,
			Config:      cfg,
		})
		st.wireSignals(co)
		st.windows = append(st.windows, co)
	}

	st.seed(ctx)

	return DemoModel{
		help:  help.New(),
		keys:  defaultDemoKeyMap(),
		theme: theme,
		state: st,
	}
}

func (s *demoState) wireSignals(co *strip.Coordinator) {
	windowID := co.WindowID()
	co.SetOnSelectionChanged(func(sel *entity.TabIndex) {
		s.logf("%s: selection -> %s", windowID, formatSelection(sel))
	})
	co.SetOnTabRemoved(func(tab *entity.Tab, sel *entity.TabIndex) {
		if sel == nil {
			s.logf("%s: closed %q, strip empty, window would close", windowID, tabLabel(tab))
			return
		}
		s.logf("%s: closed %q, selection now %s", windowID, tabLabel(tab), sel)
	})
	co.SetOnPinnedChanged(func() {
		s.logf("%s: pinned strip changed", windowID)
	})
}

func (s *demoState) seed(ctx context.Context) {
	if len(s.windows) == 0 {
		return
	}
	first := s.windows[0]
	inbox := first.Append(ctx, "Inbox", "https://mail.example.com")
	first.Append(ctx, "Getting Started", "https://tabwell.dev/start")
	first.Append(ctx, "Docs", "https://tabwell.dev/docs")
	if pos, ok := firstPosition(first, inbox); ok {
		first.Pin(ctx, entity.UnpinnedIndex(pos))
	}
	for _, w := range s.windows[1:] {
		w.Append(ctx, "New Tab", "about:blank")
	}
}

func firstPosition(co *strip.Coordinator, tab *entity.Tab) (int, bool) {
	for i, t := range co.UnpinnedTabs() {
		if t == tab {
			return i, true
		}
	}
	return 0, false
}

func (s *demoState) logf(format string, args ...any) {
	s.signals = append(s.signals, fmt.Sprintf(format, args...))
	if len(s.signals) > 100 {
		s.signals = s.signals[len(s.signals)-100:]
	}
}

func (s *demoState) focusedWindow() *strip.Coordinator {
	return s.windows[s.focused]
}

func (s *demoState) nextWindow() *strip.Coordinator {
	return s.windows[(s.focused+1)%len(s.windows)]
}

// Init implements tea.Model.
func (m DemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigReloadedMsg:
		for _, w := range m.state.windows {
			w.ApplyConfig(msg.Config)
		}
		m.state.logf("config reloaded: switch_to_new=%t recent_limit=%d",
			msg.Config.Tabs.SwitchToNewWhenOpened, msg.Config.Tabs.RecentlyClosedLimit)
		return m, nil
	}
	return m, nil
}

func (m DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.state.ctx
	w := m.state.focusedWindow()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		w.SelectNext(ctx)

	case key.Matches(msg, m.keys.PrevTab):
		w.SelectPrevious(ctx)

	case key.Matches(msg, m.keys.FirstTab):
		w.SelectFirst(ctx)

	case key.Matches(msg, m.keys.LastTab):
		w.SelectLast(ctx)

	case key.Matches(msg, m.keys.NewTab):
		w.Append(ctx, "New Tab", "about:blank")

	case key.Matches(msg, m.keys.NewChild):
		w.InsertAfterSelected(ctx, "Link Target", "about:blank")

	case key.Matches(msg, m.keys.Duplicate):
		w.Duplicate(ctx)

	case key.Matches(msg, m.keys.Close):
		w.RemoveSelected(ctx)

	case key.Matches(msg, m.keys.Reopen):
		w.ReopenClosed(ctx)

	case key.Matches(msg, m.keys.Pin):
		if sel := w.Selection(); sel != nil {
			if sel.IsPinned() {
				w.Unpin(ctx, *sel)
			} else {
				w.Pin(ctx, *sel)
			}
		}

	case key.Matches(msg, m.keys.MoveLeft):
		m.moveSelected(ctx, w, -1)

	case key.Matches(msg, m.keys.MoveRight):
		m.moveSelected(ctx, w, 1)

	case key.Matches(msg, m.keys.NextWindow):
		m.state.focused = (m.state.focused + 1) % len(m.state.windows)

	case key.Matches(msg, m.keys.Transfer):
		if sel := w.Selection(); sel != nil && len(m.state.windows) > 1 {
			dst := m.state.nextWindow()
			w.TransferTo(ctx, *sel, dst, dst.Counts().Unpinned)
		}

	default:
		if n, ok := ordinalKey(msg.String()); ok {
			if n == 8 { // key "9" selects the last tab
				w.SelectLast(ctx)
			} else {
				w.SelectOrdinal(ctx, n)
			}
		}
	}
	return m, nil
}

func (m DemoModel) moveSelected(ctx context.Context, w *strip.Coordinator, delta int) {
	sel := w.Selection()
	if sel == nil {
		return
	}
	var to entity.TabIndex
	if sel.IsPinned() {
		to = entity.PinnedIndex(sel.Position() + delta)
	} else {
		to = entity.UnpinnedIndex(sel.Position() + delta)
	}
	if to.Position() < 0 {
		return
	}
	w.Move(ctx, *sel, to)
}

func ordinalKey(s string) (int, bool) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1'), true
	}
	return 0, false
}

// View implements tea.Model.
func (m DemoModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("tabwell demo"))
	b.WriteString("\n\n")

	for i, w := range m.state.windows {
		b.WriteString(m.renderWindow(w, i == m.state.focused))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSignals())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m DemoModel) renderWindow(w *strip.Coordinator, focused bool) string {
	counts := w.Counts()
	sel := w.Selection()

	header := fmt.Sprintf("%s  %d pinned / %d tabs", w.WindowID(), counts.Pinned, counts.Unpinned)
	if w.RecentlyClosedCount() > 0 {
		header += fmt.Sprintf("  (%d reopenable)", w.RecentlyClosedCount())
	}

	var tabs []string
	for n := 0; n < counts.Total(); n++ {
		idx, _ := counts.AtOrdinal(n)
		tab := w.TabAt(idx)
		label := tabLabel(tab)
		if idx.IsPinned() {
			label = m.theme.PinnedBadge.Render("⚲") + " " + label
		}
		style := m.theme.InactiveTab
		if sel != nil && sel.Equal(idx) {
			style = m.theme.SelectedTab
		}
		tabs = append(tabs, style.Render(label))
	}
	stripLine := m.theme.Subtle.Render("(empty)")
	if len(tabs) > 0 {
		stripLine = lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	}

	frame := m.theme.UnfocusedWindow
	if focused {
		frame = m.theme.FocusedWindow
	}
	content := m.theme.WindowHeader.Render(header) + "\n" + stripLine
	return frame.Render(content)
}

func (m DemoModel) renderSignals() string {
	signals := m.state.signals
	if len(signals) > maxVisibleSignals {
		signals = signals[len(signals)-maxVisibleSignals:]
	}
	if len(signals) == 0 {
		return m.theme.Subtle.Render("no signals yet")
	}
	var lines []string
	for _, s := range signals {
		lines = append(lines, m.theme.Subtle.Render("· ")+m.theme.Normal.Render(s))
	}
	return strings.Join(lines, "\n")
}

func formatSelection(sel *entity.TabIndex) string {
	if sel == nil {
		return "none"
	}
	return sel.String()
}

func tabLabel(tab *entity.Tab) string {
	if tab == nil || tab.Title == "" {
		return "untitled"
	}
	return tab.Title
}
