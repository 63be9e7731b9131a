package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/windowwise/internal/assistant"
	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/questionnaire"
	"github.com/Veraticus/windowwise/internal/tui/themes"
)

const (
	detectTimeout  = 5 * time.Second
	chatHistoryLen = 4
)

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	recommender Recommender
	detector    LocationDetector
	session     *questionnaire.Session
	notice      string
	detected    string
	catalog     []model.Product
	recs        []model.Recommendation
	chat        []chatEntry
	keymap      KeyMap
	location    textinput.Model
	chatInput   textinput.Model
	spinner     spinner.Model
	progress    progress.Model
	help        help.Model
	zone        climate.Zone
	state       State
	cursor      int
	width       int
	height      int
	chatFocused bool
	quitting    bool
	aborted     bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	loc := textinput.New()
	loc.Placeholder = "City, ST"
	loc.CharLimit = 64
	loc.Width = 32
	loc.SetValue(cfg.DefaultLocation)
	loc.Focus()

	chat := textinput.New()
	chat.Placeholder = "Ask about cost, energy or materials"
	chat.CharLimit = 200
	chat.Width = 48

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(cfg.Theme.Cursor),
	)

	return Model{
		theme:       cfg.Theme,
		recommender: cfg.Recommender,
		detector:    cfg.Detector,
		catalog:     cfg.Catalog,
		session:     questionnaire.NewSession(),
		keymap:      DefaultKeyMap(),
		location:    loc,
		chatInput:   chat,
		spinner:     sp,
		progress: progress.New(
			progress.WithSolidFill(string(cfg.Theme.Primary)),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
		help:   help.New(),
		zone:   climate.DefaultZone,
		state:  StateQuestion,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.detector != nil && m.location.Value() == "" {
		cmds = append(cmds, detectLocation(m.detector))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case locationDetectedMsg:
		if msg.err == nil && msg.location != "" {
			m.detected = msg.location
			if m.location.Value() == "" {
				m.location.SetValue(msg.location)
				m.location.CursorEnd()
			}
		}
		return m, nil

	case recommendationsMsg:
		m.recs = msg.recs
		m.cursor = 0
		m.state = StateResults
		return m, nil

	case spinner.TickMsg:
		if m.state != StateScoring {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m.quit()
		}
		switch m.state {
		case StateQuestion:
			return m.updateQuestion(msg)
		case StateResults:
			return m.updateResults(msg)
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case StateScoring:
		return m.renderScoring()
	case StateResults:
		return m.renderResults()
	default:
		return m.renderQuestion()
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.aborted = m.state != StateResults
	return m, tea.Quit
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.session.Current()

	if q.Kind == questionnaire.KindLocation {
		switch {
		case key.Matches(msg, m.keymap.Next):
			m.session.SetLocation(m.location.Value())
			return m.advance()
		case key.Matches(msg, m.keymap.Help) && m.location.Value() == "":
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		var cmd tea.Cmd
		m.location, cmd = m.location.Update(msg)
		m.notice = ""
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Toggle):
		m.choose(q)
	case key.Matches(msg, m.keymap.Next):
		if q.Kind == questionnaire.KindRadio {
			m.choose(q)
		}
		return m.advance()
	case key.Matches(msg, m.keymap.Back):
		m.session.Prev()
		m.enterQuestion()
	}
	return m, nil
}

func (m *Model) choose(q questionnaire.Question) {
	if m.cursor >= len(q.Options) {
		return
	}
	if err := m.session.Choose(q.Options[m.cursor].Value); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = ""
}

// advance moves to the next question, or starts scoring after the last one.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if err := m.session.Next(); err != nil {
		m.notice = noticeFor(err)
		return m, nil
	}
	m.notice = ""
	if !m.session.Done() {
		m.enterQuestion()
		return m, nil
	}

	m.zone = m.session.Zone()
	m.state = StateScoring
	return m, tea.Batch(m.spinner.Tick, m.recommend())
}

// enterQuestion resets per-question UI state for the current question.
func (m *Model) enterQuestion() {
	q := m.session.Current()
	m.cursor = 0
	for i, o := range q.Options {
		if m.session.Selected(o.Value) {
			m.cursor = i
			break
		}
	}
	if q.Kind == questionnaire.KindLocation {
		m.location.Focus()
	} else {
		m.location.Blur()
	}
}

func (m Model) recommend() tea.Cmd {
	answers := m.session.Answers()
	catalog := m.catalog
	r := m.recommender
	return func() tea.Msg {
		if r == nil {
			return recommendationsMsg{}
		}
		return recommendationsMsg{recs: r.Recommend(catalog, answers, answers.Location())}
	}
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.chatFocused {
		switch msg.Type {
		case tea.KeyEnter:
			m.ask(m.chatInput.Value())
			m.chatInput.Reset()
			return m, nil
		case tea.KeyEsc:
			m.chatFocused = false
			m.chatInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.chatInput, cmd = m.chatInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.recs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Chat):
		m.chatFocused = true
		return m, m.chatInput.Focus()
	case key.Matches(msg, m.keymap.Restart):
		m.restart()
	case key.Matches(msg, m.keymap.Back):
		m.session.Prev()
		m.state = StateQuestion
		m.enterQuestion()
	}
	return m, nil
}

func (m *Model) ask(question string) {
	if question == "" {
		return
	}
	m.chat = append(m.chat, chatEntry{question: question, reply: assistant.Reply(question)})
	if len(m.chat) > chatHistoryLen {
		m.chat = m.chat[len(m.chat)-chatHistoryLen:]
	}
}

func (m *Model) restart() {
	m.session.Restart()
	m.recs = nil
	m.chat = nil
	m.notice = ""
	m.zone = climate.DefaultZone
	m.state = StateQuestion
	m.location.SetValue(m.detected)
	m.enterQuestion()
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.state == StateQuestion && m.session.Current().Kind == questionnaire.KindLocation:
		m.location, cmd = m.location.Update(msg)
	case m.state == StateResults && m.chatFocused:
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}

// detectLocation looks up the user's location in the background.
func detectLocation(d LocationDetector) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
		defer cancel()

		location, err := d.Detect(ctx)
		return locationDetectedMsg{location: location, err: err}
	}
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, questionnaire.ErrInvalidLocation):
		return "Enter a location like \"Seattle, WA\" in a supported state."
	case errors.Is(err, questionnaire.ErrNotAnswered):
		return "Please choose an option to continue."
	default:
		return err.Error()
	}
}
