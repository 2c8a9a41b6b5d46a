package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Bibliophage305/wordle-solver/internal/config"
	"github.com/Bibliophage305/wordle-solver/internal/session"
	"github.com/Bibliophage305/wordle-solver/internal/solver"
	"github.com/Bibliophage305/wordle-solver/internal/storage"
)

// Options holds what every solve screen shares.
type Options struct {
	Store           *storage.Store // optional
	Mode            config.Mode
	UseOpeningCache bool
	Workers         int
	Logger          *log.Logger // nil discards session logs
}

// Messages carry the id of the model that started the work, so results from
// an abandoned screen are dropped.
type sessionReadyMsg struct {
	id   uint64
	sess *session.Session
	err  error
}

type submittedMsg struct {
	id  uint64
	err error
}

var solveIDs atomic.Uint64

const (
	focusGuess = iota
	focusResult
)

// SolveModel is the Bubble Tea model for solving one puzzle. The player
// types the guess they played and the colors the game showed; the solver
// answers with its next suggestion.
type SolveModel struct {
	variant   config.Variant
	hard      bool
	recompute bool
	opts      Options

	id     uint64
	ctx    context.Context
	cancel context.CancelFunc

	sess    *session.Session
	guess   textinput.Model
	result  textinput.Model
	focus   int
	spinner spinner.Model
	busy    bool
	err     error

	keys       SolveKeyMap
	help       help.Model
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewSolveModel creates a solve screen. The session, and with it the opening
// suggestion, is built asynchronously by Init.
func NewSolveModel(v config.Variant, sel Selection, opts Options, width, height int) SolveModel {
	ctx, cancel := context.WithCancel(context.Background())

	guess := textinput.New()
	guess.Prompt = "Guess:  "
	guess.CharLimit = v.WordLength
	guess.Placeholder = strings.Repeat("?", v.WordLength)

	result := textinput.New()
	result.Prompt = "Result: "
	result.CharLimit = v.WordLength
	result.Placeholder = strings.Repeat("0", v.WordLength)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return SolveModel{
		variant:   v,
		hard:      sel.Mode.HardFor(v),
		recompute: sel.Recompute,
		opts:      opts,
		id:        solveIDs.Add(1),
		ctx:       ctx,
		cancel:    cancel,
		guess:     guess,
		result:    result,
		spinner:   sp,
		busy:      true,
		keys:      DefaultSolveKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
	}
}

// Init starts building the session.
func (m SolveModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startSession())
}

func (m SolveModel) startSession() tea.Cmd {
	id, ctx, v, opts := m.id, m.ctx, m.variant, m.opts
	sessOpts := session.Options{
		Variant:          v,
		Hard:             m.hard,
		Selector:         solver.Parallel{Workers: opts.Workers},
		Store:            opts.Store,
		UseOpeningCache:  opts.UseOpeningCache,
		RecomputeOpening: m.recompute,
		Logger:           opts.Logger,
	}
	return func() tea.Msg {
		s, err := session.New(ctx, sessOpts)
		return sessionReadyMsg{id: id, sess: s, err: err}
	}
}

func (m SolveModel) submit(guess, raw string) tea.Cmd {
	id, ctx, s := m.id, m.ctx, m.sess
	return func() tea.Msg {
		return submittedMsg{id: id, err: s.Submit(ctx, guess, raw)}
	}
}

// Update handles messages for the solve screen.
func (m SolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case sessionReadyMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sess = msg.sess
		m.prepareRound()
		return m, nil

	case submittedMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.busy = false
		switch {
		case msg.err == nil:
			m.err = nil
			if !m.sess.Done() {
				m.prepareRound()
			}
		case errors.Is(msg.err, solver.ErrExhaustedCandidates):
			m.err = nil
		default:
			m.err = msg.err
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// prepareRound fills in the suggestion and moves focus to the result, which
// is what the player types most of the time.
func (m *SolveModel) prepareRound() {
	m.guess.SetValue(m.sess.Suggestion().Guess)
	m.result.Reset()
	m.setFocus(focusResult)
}

func (m *SolveModel) setFocus(f int) {
	m.focus = f
	if f == focusGuess {
		m.result.Blur()
		m.guess.Focus()
		return
	}
	m.guess.Blur()
	m.result.Focus()
}

func (m SolveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.cancel()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.cancel()
		next := NewSolveModel(m.variant, Selection{Mode: m.modeForRestart()}, m.opts, m.width, m.height)
		return next, next.Init()
	}

	if m.busy || m.sess == nil {
		return m, nil
	}
	if m.sess.Done() {
		if key.Matches(msg, m.keys.Submit) {
			m.backToMenu = true
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Switch):
		m.setFocus(1 - m.focus)
		return m, nil

	case key.Matches(msg, m.keys.Suggest):
		m.guess.SetValue(m.sess.Suggestion().Guess)
		m.err = nil
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		guess := strings.ToLower(strings.TrimSpace(m.guess.Value()))
		if err := m.sess.CheckGuess(guess); err != nil {
			m.err = err
			m.setFocus(focusGuess)
			return m, nil
		}
		if m.focus == focusGuess {
			m.err = nil
			m.setFocus(focusResult)
			return m, nil
		}
		m.busy = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.submit(guess, m.result.Value()))
	}

	var cmd tea.Cmd
	if m.focus == focusGuess {
		m.guess, cmd = m.guess.Update(msg)
	} else {
		m.result, cmd = m.result.Update(msg)
	}
	return m, cmd
}

// modeForRestart keeps the same hard/normal rules on restart.
func (m SolveModel) modeForRestart() config.Mode {
	if m.hard {
		return config.ModeHard
	}
	return config.ModeNormal
}

// View renders the solve screen.
func (m SolveModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := m.variant.Name
	if title == "" {
		title = m.variant.ID
	}
	if m.hard {
		title += " (hard)"
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(strings.ToUpper(title)))
	b.WriteString("\n\n")

	if m.sess == nil {
		if m.err != nil {
			b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
			b.WriteString("\n\n")
		} else {
			b.WriteString(m.spinner.View() + " Computing first guess...\n\n")
		}
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	for _, r := range m.sess.History() {
		fmt.Fprintf(&b, "%s  %s\n", renderTiles(r.Guess, r.Pattern), dimStyle.Render(fmt.Sprintf("%d left", r.Remaining)))
	}

	st := m.sess.State()
	switch st.Status() {
	case solver.Solved:
		answer, _ := st.Answer()
		b.WriteString("\n")
		b.WriteString(winStyle.Render(fmt.Sprintf("You win! The word was %s, and you guessed it in %d guesses", answer, st.Rounds())))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("enter: back to menu  |  C-r: solve again"))
		return b.String()
	case solver.Failed:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Something went wrong, all words have been eliminated"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("enter: back to menu  |  C-r: solve again"))
		return b.String()
	}

	guess := strings.ToLower(m.guess.Value())
	b.WriteString(renderTiles(guess, partialPattern(m.result.Value())))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Guess %d\n", m.sess.GuessNumber())
	b.WriteString(m.guess.View())
	b.WriteString("\n")
	b.WriteString(m.result.View())
	b.WriteString("\n\n")

	sug := m.sess.Suggestion()
	info := fmt.Sprintf("Suggested: %s (worst case %d)  |  %d words remaining", sug.Guess, sug.WorstCase, st.CandidateCount())
	if m.sess.GuessNumber() == 1 {
		info += fmt.Sprintf("  |  opening: %s", m.sess.OpeningSource())
	}
	b.WriteString(dimStyle.Render(info))
	b.WriteString("\n")
	if words := m.sess.Remaining(); words != nil {
		b.WriteString(dimStyle.Render(strings.Join(words, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " Thinking...\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	default:
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("0 = grey, 1 = yellow, 2 = green"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Session returns the running session, or nil while it is being built.
func (m SolveModel) Session() *session.Session {
	return m.sess
}

// IsQuitting returns true if user requested to quit entirely.
func (m SolveModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m SolveModel) BackToMenu() bool {
	return m.backToMenu
}
