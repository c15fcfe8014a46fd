package ui

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/chronoline/internal/timeline"
)

const (
	axisMargin    = 2
	axisRow       = 1
	labelRow      = 2
	headerLines   = 4 // header, axis, labels, spacer
	footerLines   = 2 // error line, help or prompt
	maxModalWidth = 76
)

// Model implements the Bubble Tea program for the timeline.
type Model struct {
	tl    *timeline.Timeline
	state timeline.State
	view  timeline.View
	title string
	src   string

	panelVP       viewport.Model
	renderer      *glamour.TermRenderer
	modalRenderer *glamour.TermRenderer
	modalContent  string
	returnOffset  int
	th            theme
	keys          keyMap
	help          help.Model
	showHelp      bool
	ready         bool
	width         int
	height        int
	err           error

	jumpInput  textinput.Model
	jumpActive bool

	reload     func() (*timeline.Timeline, error)
	affects    func(string) bool
	watchPaths []string
	watcher    *fsnotify.Watcher
	watched    map[string]bool
	watchChan  chan tea.Msg
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the timeline model with the provided initial state.
func NewModel(state State) *Model {
	tl := state.Timeline
	if tl == nil {
		tl = timeline.Default()
	}
	st := timeline.Initial(tl, state.Theme)
	if state.StartYear != 0 {
		st, _ = timeline.Activate(tl, st, state.StartYear)
	}

	panelVP := viewport.New(0, 0)
	panelVP.Style = lipgloss.NewStyle().Padding(0, 1)

	jumpInput := textinput.New()
	jumpInput.Prompt = "/"
	jumpInput.CharLimit = 64
	jumpInput.Placeholder = "year or title"
	jumpInput.Blur()

	title := state.Title
	if title == "" {
		title = "chronoline"
	}

	return &Model{
		tl:         tl,
		state:      st,
		view:       timeline.Render(tl, st),
		title:      title,
		src:        state.Source,
		panelVP:    panelVP,
		th:         newTheme(st.Theme),
		keys:       defaultKeyMap(),
		help:       help.New(),
		jumpInput:  jumpInput,
		reload:     state.Reload,
		affects:    state.Affects,
		watchPaths: state.WatchPaths,
	}
}

// State returns the current timeline state.
func (m *Model) State() timeline.State { return m.state }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.reload == nil || len(m.watchPaths) == 0 {
		return nil
	}
	return m.startWatching(m.watchPaths)
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	if m.showHelp {
		m.help.ShowAll = true
		overlay := m.th.helpBox.Render("Keys (? or esc to close)\n\n" + m.help.View(m.keys))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	if m.state.Modal.Open {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalBox())
	}

	axis, labels := m.axisLines()
	parts := []string{m.headerLine(), axis, labels, "", m.panelVP.View()}

	errText := ""
	if m.err != nil {
		errText = m.th.errLine.Render(ansi.Truncate(m.err.Error(), max(m.width-2, 1), "…"))
	}
	parts = append(parts, errText)

	if m.jumpActive {
		parts = append(parts, m.th.prompt.Render(m.jumpInput.View()))
	} else {
		m.help.ShowAll = false
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.panelVP, cmd = m.panelVP.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jumpActive {
		switch msg.Type {
		case tea.KeyEnter:
			query := strings.TrimSpace(m.jumpInput.Value())
			m.exitJumpMode()
			if query != "" {
				m.jumpTo(query)
			}
			return m, nil
		case tea.KeyEsc, tea.KeyCtrlC:
			m.exitJumpMode()
			return m, nil
		}
		var cmd tea.Cmd
		m.jumpInput, cmd = m.jumpInput.Update(msg)
		return m, cmd
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "q", "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if m.state.Modal.Open {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.closeDetails()
		case key.Matches(msg, m.keys.Theme):
			m.setState(timeline.ToggleTheme(m.state))
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Prev):
		m.setState(timeline.MoveFocus(m.tl, m.state, -1))
	case key.Matches(msg, m.keys.Next):
		m.setState(timeline.MoveFocus(m.tl, m.state, 1))
	case key.Matches(msg, m.keys.First):
		m.setState(timeline.FocusFirst(m.tl, m.state))
	case key.Matches(msg, m.keys.Last):
		m.setState(timeline.FocusLast(m.tl, m.state))
	case key.Matches(msg, m.keys.Activate):
		next, _ := timeline.ActivateFocused(m.tl, m.state)
		m.setState(next)
	case key.Matches(msg, m.keys.Details):
		if m.state.HasActive {
			m.openDetails(m.state.Active)
		}
	case key.Matches(msg, m.keys.Theme):
		m.setState(timeline.ToggleTheme(m.state))
	case key.Matches(msg, m.keys.Down):
		m.panelVP.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.panelVP.LineUp(1)
	case key.Matches(msg, m.keys.Jump):
		return m, m.enterJumpMode()
	default:
		var cmd tea.Cmd
		m.panelVP, cmd = m.panelVP.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if !m.state.Modal.Open {
			m.panelVP, _ = m.panelVP.Update(msg)
		}
		return
	}
	if msg.Button != tea.MouseButtonLeft {
		return
	}

	if m.state.Modal.Open {
		left, top, w, h := m.modalRect()
		if msg.X < left || msg.X >= left+w || msg.Y < top || msg.Y >= top+h {
			m.closeDetails()
		}
		return
	}
	if m.showHelp || m.jumpActive {
		return
	}

	if year, ok := m.hitTest(msg.X, msg.Y); ok {
		if next, ok := timeline.Activate(m.tl, m.state, year); ok {
			m.setState(next)
		}
	}
}

// setState applies a transition. Marker and panel flags are toggled in the
// cached view instead of rebuilding it.
func (m *Model) setState(next timeline.State) {
	prev := m.state
	m.state = next

	if prev.Active != next.Active || prev.HasActive != next.HasActive {
		m.view.ApplyActive(next.Active, next.HasActive)
		m.renderPanel()
		m.panelVP.GotoTop()
	}
	if prev.Focus != next.Focus {
		m.view.ApplyFocus(next.Focus)
	}
	if prev.Theme != next.Theme {
		m.view.Theme = next.Theme
		m.th = newTheme(next.Theme)
		m.refreshRenderers()
	}
	if prev.Modal != next.Modal {
		m.view.ApplyDetails(m.tl, next.Modal)
		if next.Modal.Open {
			m.renderModal()
		}
	}
}

func (m *Model) openDetails(year int) {
	next, ok := timeline.OpenDetails(m.tl, m.state, year)
	if !ok {
		return
	}
	m.returnOffset = m.panelVP.YOffset
	m.setState(next)
}

func (m *Model) closeDetails() {
	if !m.state.Modal.Open {
		return
	}
	m.setState(timeline.CloseDetails(m.state))
	m.panelVP.SetYOffset(m.returnOffset)
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	m.ready = true
	m.help.Width = width

	m.panelVP.Width = width
	m.panelVP.Height = max(height-headerLines-footerLines, 1)
	m.jumpInput.Width = max(width-4, 1)

	m.refreshRenderers()
}

func (m *Model) refreshRenderers() {
	if !m.ready {
		return
	}
	wrap := max(m.panelVP.Width-m.panelVP.Style.GetHorizontalFrameSize(), 0)
	renderer, err := newRenderer(m.th.glamourStyle, wrap)
	if err != nil {
		m.err = err
		return
	}
	m.renderer = renderer

	modalRenderer, err := newRenderer(m.th.glamourStyle, m.modalInnerWidth())
	if err != nil {
		m.err = err
		return
	}
	m.modalRenderer = modalRenderer

	offset := m.panelVP.YOffset
	m.renderPanel()
	m.panelVP.SetYOffset(offset)
	if m.state.Modal.Open {
		m.renderModal()
	}
}

func (m *Model) renderPanel() {
	if m.renderer == nil {
		return
	}
	panel, ok := m.view.ActivePanel()
	if !ok {
		m.panelVP.SetContent("No events to display.")
		return
	}
	rendered, err := m.renderer.Render(cardMarkdown(panel.Event, false))
	if err != nil {
		m.err = err
		return
	}
	m.panelVP.SetContent(rendered)
}

func (m *Model) renderModal() {
	if m.modalRenderer == nil || m.view.Details == nil {
		m.modalContent = ""
		return
	}
	rendered, err := m.modalRenderer.Render(cardMarkdown(*m.view.Details, true))
	if err != nil {
		m.err = err
		return
	}
	m.modalContent = strings.TrimRight(rendered, "\n")
}

func (m *Model) modalWidth() int {
	return clamp(m.width-4, 20, maxModalWidth)
}

func (m *Model) modalInnerWidth() int {
	return max(m.modalWidth()-m.th.modalBox.GetHorizontalFrameSize(), 10)
}

func (m *Model) modalBox() string {
	body := m.modalContent
	if m.view.Details == nil {
		body = "Event not found."
	}
	hint := lipgloss.NewStyle().Foreground(m.th.muted).Render("esc/q/x: close")
	content := lipgloss.JoinVertical(lipgloss.Left, body, "", hint)

	// Keep the box inside the screen; the viewport is not scrollable here.
	lines := strings.Split(content, "\n")
	if limit := m.height - m.th.modalBox.GetVerticalFrameSize(); limit > 0 && len(lines) > limit {
		lines = append(lines[:limit-1], hint)
	}
	return m.th.modalBox.Width(m.modalWidth() - m.th.modalBox.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// modalRect mirrors the centring done by lipgloss.Place, which puts the
// rounded half of the gap after the box.
func (m *Model) modalRect() (left, top, width, height int) {
	box := m.modalBox()
	width = lipgloss.Width(box)
	height = lipgloss.Height(box)
	left = centreOffset(m.width - width)
	top = centreOffset(m.height - height)
	return left, top, width, height
}

func centreOffset(gap int) int {
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

func (m *Model) headerLine() string {
	text := m.title
	if panel, ok := m.view.ActivePanel(); ok {
		text = fmt.Sprintf("%s · %d %s", m.title, panel.Year, panel.Title)
	}
	if m.src != "" {
		text += "  (" + m.src + ")"
	}
	badge := m.th.badge.Render(m.state.Theme.String())
	room := max(m.width-lipgloss.Width(badge)-2, 1)
	return m.th.header.Render(ansi.Truncate(text, room, "…")) + badge
}

type axisSlot struct {
	year       int
	col        int
	labelStart int
	labelEnd   int
	labeled    bool
}

// axisSlots places each marker and decides which year labels fit. The
// active label always wins; other labels are dropped when they would
// overlap one already placed.
func (m *Model) axisSlots() []axisSlot {
	width := max(m.width-2*axisMargin, 1)
	slots := make([]axisSlot, len(m.view.Markers))
	for i, mk := range m.view.Markers {
		col := timeline.Column(mk.Position, width)
		label := strconv.Itoa(mk.Year)
		start := clamp(col-len(label)/2, 0, max(width-len(label), 0))
		slots[i] = axisSlot{
			year:       mk.Year,
			col:        axisMargin + col,
			labelStart: axisMargin + start,
			labelEnd:   axisMargin + start + len(label),
		}
	}

	order := make([]int, 0, len(slots))
	for i, mk := range m.view.Markers {
		if mk.Active {
			order = append([]int{i}, order...)
		} else {
			order = append(order, i)
		}
	}
	for _, i := range order {
		free := true
		for j := range slots {
			if slots[j].labeled && slots[i].labelStart <= slots[j].labelEnd && slots[j].labelStart <= slots[i].labelEnd {
				free = false
				break
			}
		}
		if free && slots[i].labelEnd <= m.width {
			slots[i].labeled = true
		}
	}
	return slots
}

func (m *Model) axisLines() (string, string) {
	width := max(m.width, 1)
	axis := make([]string, width)
	labels := make([]string, width)
	for i := range axis {
		axis[i] = " "
		labels[i] = " "
		if i >= axisMargin && i < width-axisMargin {
			axis[i] = m.th.axis.Render("─")
		}
	}

	for i, slot := range m.axisSlots() {
		mk := m.view.Markers[i]
		if slot.col < width {
			style, glyph := m.th.marker, "○"
			if mk.Active {
				style, glyph = m.th.markerActive, "●"
			}
			if mk.Focused {
				style = style.Underline(true)
			}
			axis[slot.col] = style.Render(glyph)
		}
		if slot.labeled {
			style := m.th.label
			if mk.Active {
				style = m.th.labelActive
			}
			labels[slot.labelStart] = style.Render(strconv.Itoa(slot.year))
			for c := slot.labelStart + 1; c < slot.labelEnd && c < width; c++ {
				labels[c] = ""
			}
		}
	}
	return strings.Join(axis, ""), strings.Join(labels, "")
}

// hitTest maps a click on the axis or label row to a year.
func (m *Model) hitTest(x, y int) (int, bool) {
	for _, slot := range m.axisSlots() {
		switch y {
		case axisRow:
			if x >= slot.col-1 && x <= slot.col+1 {
				return slot.year, true
			}
		case labelRow:
			if slot.labeled && x >= slot.labelStart && x < slot.labelEnd {
				return slot.year, true
			}
		}
	}
	return 0, false
}

func (m *Model) enterJumpMode() tea.Cmd {
	m.jumpActive = true
	m.jumpInput.SetValue("")
	return m.jumpInput.Focus()
}

func (m *Model) exitJumpMode() {
	m.jumpActive = false
	m.jumpInput.Blur()
}

// jumpTo activates the event whose year equals query or whose title
// contains it.
func (m *Model) jumpTo(query string) {
	year, ok := findEvent(m.tl, query)
	if !ok {
		m.err = fmt.Errorf("no event matches %q", query)
		return
	}
	m.err = nil
	next, _ := timeline.Activate(m.tl, m.state, year)
	m.setState(next)
}

func findEvent(tl *timeline.Timeline, query string) (int, bool) {
	if year, err := strconv.Atoi(query); err == nil {
		if _, ok := tl.Lookup(year); ok {
			return year, true
		}
		return 0, false
	}
	q := strings.ToLower(query)
	for _, ev := range tl.Events() {
		if strings.Contains(strings.ToLower(ev.Title), q) {
			return ev.Year, true
		}
	}
	return 0, false
}

// replaceTimeline swaps in freshly loaded events and carries the state over.
func (m *Model) replaceTimeline(tl *timeline.Timeline) {
	m.tl = tl
	m.state = timeline.Reconcile(tl, m.state)
	m.view = timeline.Render(tl, m.state)
	offset := m.panelVP.YOffset
	m.renderPanel()
	m.panelVP.SetYOffset(offset)
	if m.state.Modal.Open {
		m.renderModal()
	}
}

func cardMarkdown(ev timeline.Event, details bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", ev.Title)
	fmt.Fprintf(&b, "**Year:** %d", ev.Year)
	if ev.Category != "" {
		fmt.Fprintf(&b, "  \n**Category:** %s", ev.Category)
	}
	b.WriteString("\n\n")
	if ev.Description != "" {
		b.WriteString(strings.TrimSpace(ev.Description))
		b.WriteString("\n\n")
	}
	if imageURL(ev.Image) {
		fmt.Fprintf(&b, "Image: <%s>\n\n", ev.Image)
	}
	if ev.Link != "" {
		text := "Learn More"
		if details {
			text = "Visit Wikipedia"
		}
		fmt.Fprintf(&b, "[%s](%s)\n", text, ev.Link)
	}
	if !details {
		b.WriteString("\n*Press d for details.*\n")
	}
	return b.String()
}

// imageURL reports whether ref can be shown. Anything else is left out, the
// same way a browser hides a broken image.
func imageURL(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 0)),
	)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
