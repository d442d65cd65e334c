package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagekit/internal/paginator"
)

// ViewState is the interaction mode of the pager.
type ViewState int

const (
	// ViewStateBrowse shows the current page and accepts navigation keys.
	ViewStateBrowse ViewState = iota
	// ViewStateJump shows the page-number prompt.
	ViewStateJump
	// ViewStateQuitting is entered when the user quits.
	ViewStateQuitting
)

const (
	// defaultLimitStep is how much +/- grow or shrink the page size.
	defaultLimitStep = 5

	jumpInputCharLimit = 9
	jumpInputWidth     = 10
)

// PagerModel is a Bubble Tea model that pages through a list of records.
// Every navigation goes through the paginator's Configure, so the derived page,
// range and button window are always consistent with what is displayed.
type PagerModel struct {
	state   ViewState
	records []string
	pager   *paginator.Paginator

	jumpInput textinput.Model
	limitStep int

	width  int
	height int
}

// NewPagerModel creates a pager over records. The paginator's total is set to
// len(records); its start and limit are kept.
func NewPagerModel(records []string, pg *paginator.Paginator) *PagerModel {
	pg.Configure(paginator.Options{Total: paginator.Int(len(records))})
	return &PagerModel{
		state:     ViewStateBrowse,
		records:   records,
		pager:     pg,
		jumpInput: newJumpInput(),
		limitStep: defaultLimitStep,
		width:     defaultWidth,
	}
}

func newJumpInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "page"
	ti.Prompt = "Go to page: "
	ti.CharLimit = jumpInputCharLimit
	ti.Width = jumpInputWidth
	return ti
}

// Paginator returns the paginator driving the model.
func (m *PagerModel) Paginator() *paginator.Paginator {
	return m.pager
}

// State returns the current view state.
func (m *PagerModel) State() ViewState {
	return m.state
}

// Init initializes the model.
func (m *PagerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		return m, nil
	}

	switch m.state {
	case ViewStateJump:
		return m.handleJumpUpdate(msg)
	case ViewStateBrowse:
		return m.handleBrowseUpdate(msg)
	case ViewStateQuitting:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *PagerModel) handleBrowseUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyLeft, keyH, keyPgUp:
		m.goTo(m.pager.Previous())
	case keyRight, keyL, keyPgDown:
		m.goTo(m.pager.Next())
	case keyHome, keyG:
		m.goTo(m.pager.First())
	case keyEnd, keyShiftG:
		m.goTo(m.pager.Last())
	case keyPlus, keyEquals:
		m.changeLimit(m.pager.Limit() + m.limitStep)
	case keyMinus:
		m.changeLimit(m.pager.Limit() - m.limitStep)
	case keyColon:
		m.state = ViewStateJump
		m.jumpInput.SetValue("")
		return m, m.jumpInput.Focus()
	}
	return m, nil
}

func (m *PagerModel) handleJumpUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter:
			m.goTo(m.pager.ForPageValue(m.jumpInput.Value()))
			m.closeJump()
			return m, nil
		case keyEsc:
			m.closeJump()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m *PagerModel) closeJump() {
	m.jumpInput.Blur()
	m.jumpInput.SetValue("")
	m.state = ViewStateBrowse
}

func (m *PagerModel) goTo(start int) {
	m.pager.Configure(paginator.Options{Start: paginator.Int(start)})
}

// changeLimit applies a new page size and realigns start to the page holding the
// first visible record, falling back to the last page when that page no longer exists.
func (m *PagerModel) changeLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	if limit == m.pager.Limit() {
		return
	}

	m.pager.Configure(paginator.Options{Limit: paginator.Int(limit)})
	start := m.pager.Start() / limit * limit
	if last := m.pager.ForLimitChange(); start > last {
		start = last
	}
	m.goTo(start)
}
