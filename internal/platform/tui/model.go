package tui

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorbot/internal/config"
	"github.com/vovakirdan/colorbot/internal/core"
	"github.com/vovakirdan/colorbot/internal/quiz"
	"github.com/vovakirdan/colorbot/internal/robot"
	"github.com/vovakirdan/colorbot/internal/wheel"
)

// revealPerTick is how many characters of speech appear each tick.
const revealPerTick = 2

// status is what the robot is doing in the current round.
type status int

const (
	statusSpeaking status = iota
	statusSearching
	statusHint
	statusFound
	statusDone
)

// robotEventMsg carries a robot event into the update loop, tagged with the
// round whose robot reported it.
type robotEventMsg struct {
	id    int
	event robot.Event
}

// roundDoneMsg is sent when quiz.Play returns.
type roundDoneMsg struct {
	id      int
	outcome quiz.Outcome
	err     error
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	cfg       config.Config
	runtime   core.RuntimeConfig
	mode      quiz.Mode
	rng       *rand.Rand
	robot     *robot.Virtual
	newFinder robot.FinderFactory
	logger    *log.Logger
	tally     *quiz.Tally
	keyMapper *KeyMapper
	help      help.Model
	spinner   spinner.Model

	// Current round
	roundID  int
	round    quiz.Round
	ctx      context.Context
	cancel   context.CancelFunc
	status   status
	speech   []rune // What the robot is saying
	revealed int    // How much of speech is on screen
	lastCard *wheel.Color
	notice   string
	misses   int
	hints    int
	outcome  quiz.Outcome
	err      error

	quitting bool
}

// NewModel creates a play session and draws its first question.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner

	m := Model{
		cfg:       cfg,
		runtime:   rt,
		mode:      cfg.GameMode(),
		rng:       rand.New(rand.NewSource(rt.Seed)),
		newFinder: robot.NewFinderFactory(cfg.ClueMap(), logger.WithPrefix("finder")),
		logger:    logger,
		tally:     quiz.NewTally(),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		spinner:   sp,
	}
	m.help.Width = rt.ScreenW
	m.prepareRound()
	return m
}

// prepareRound draws the next question and resets per-round state.
// Every round gets its own robot so events from a finished round cannot
// reach the next one.
func (m *Model) prepareRound() {
	m.roundID++
	m.robot = robot.NewVirtual(robot.VirtualOptions{WordsPerMinute: m.cfg.Speech.WordsPerMinute})

	round, err := quiz.NewRound(m.mode, m.rng, m.cfg.Prompts)
	if err != nil {
		// Mode is validated by config, so this only happens on a programming error
		m.err = err
		m.status = statusDone
		m.robot.Close()
		return
	}

	m.round = round
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.status = statusSpeaking
	m.speech = nil
	m.revealed = 0
	m.lastCard = nil
	m.notice = ""
	m.misses = 0
	m.hints = 0
	m.outcome = quiz.Outcome{}
	m.err = nil
}

// playCmd runs the current round in the background.
func (m Model) playCmd() tea.Cmd {
	if m.err != nil {
		return nil
	}
	ctx, id, round := m.ctx, m.roundID, m.round
	r, newFinder := m.robot, m.newFinder
	opts := m.cfg.PlayOptions()
	opts.Logger = m.logger

	return func() tea.Msg {
		out, err := quiz.Play(ctx, r, newFinder, round, opts)
		return roundDoneMsg{id: id, outcome: out, err: err}
	}
}

// waitForEvent returns a command that delivers the next robot event of
// round id. It yields no message once the robot is closed.
func waitForEvent(id int, events <-chan robot.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return robotEventMsg{id: id, event: e}
	}
}

// Init starts the first round.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.playCmd(),
		waitForEvent(m.roundID, m.robot.Events()),
		tickCmd(m.runtime.TickRate),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case robotEventMsg:
		if msg.id != m.roundID {
			return m, nil
		}
		m.handleEvent(msg.event)
		return m, waitForEvent(m.roundID, m.robot.Events())

	case roundDoneMsg:
		return m.handleRoundDone(msg)

	case TickMsg:
		if m.revealed < len(m.speech) {
			m.revealed = min(len(m.speech), m.revealed+revealPerTick)
		}
		return m, tickCmd(m.runtime.TickRate)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keyMapper.MapKey(msg)

	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case core.ActionShowCard:
		card := in.Card
		m.lastCard = &card
		switch m.status {
		case statusSearching:
			if m.robot.ShowCard(card) {
				m.notice = ""
			} else {
				m.notice = "Slow down! The robot is still looking at the last card."
			}
		case statusSpeaking, statusHint:
			m.notice = "Wait until the robot starts looking!"
		default:
			m.notice = ""
		}

	case core.ActionHint:
		if m.status == statusSearching {
			m.robot.TapCube()
		}

	case core.ActionNext:
		if m.status == statusDone {
			m.prepareRound()
			return m, tea.Batch(m.playCmd(), waitForEvent(m.roundID, m.robot.Events()))
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleEvent folds a robot event into the round state. Events still
// buffered when the round result arrives change nothing.
func (m *Model) handleEvent(e robot.Event) {
	if m.status == statusDone {
		return
	}

	switch e.Kind {
	case robot.EventSpeech:
		m.speech = []rune(e.Text)
		m.revealed = 0
		if m.status == statusSpeaking || m.status == statusSearching {
			m.status = statusSpeaking
		}

	case robot.EventSpeechDone:
		m.revealed = len(m.speech)

	case robot.EventSearching:
		if m.status != statusFound {
			m.status = statusSearching
		}

	case robot.EventSaw:
		m.misses++

	case robot.EventHint:
		m.hints++
		m.status = statusHint

	case robot.EventFound:
		m.status = statusFound
	}
}

// handleRoundDone records a finished round.
func (m Model) handleRoundDone(msg roundDoneMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.roundID {
		return m, nil
	}

	if m.cancel != nil {
		m.cancel()
	}
	// Play has returned, so nothing reports on this robot any more
	m.robot.Close()
	m.status = statusDone
	m.outcome = msg.outcome

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.err = msg.err
		m.logger.Error("round failed", "err", msg.err)
		return m, nil
	}

	m.misses, m.hints = msg.outcome.Misses, msg.outcome.Hints
	m.tally.Record(msg.outcome)
	m.logger.Info("round recorded",
		"player", m.runtime.Player,
		"mode", msg.outcome.Round.Mode,
		"found", msg.outcome.Found,
		"misses", msg.outcome.Misses,
		"hints", msg.outcome.Hints,
	)
	return m, nil
}

// Tally returns the session stats.
func (m Model) Tally() *quiz.Tally {
	return m.tally
}

// Run starts the Bubble Tea program for a play session.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
