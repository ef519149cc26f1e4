package tui

import (
	"log"
	"time"

	"moodboost/internal/anim"
	"moodboost/internal/config"
	"moodboost/internal/mood"
	"moodboost/ui/tui/components"
	"moodboost/ui/tui/state"
	"moodboost/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Face canvas size in cells.
const (
	faceWidth   = 36
	eyesHeight  = 4
	mouthHeight = 8
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	config   config.Config
	state    state.AppState
	keys     keyMap
	help     help.Model
	face     *components.FaceWidget
	progress anim.Tween
	fade     anim.Tween
	pulses   *anim.Pulses
	now      func() time.Time
	quitting bool
	width    int
	height   int
}

// Messages
type AnimateMsg time.Time

func InitialModel(cfg config.Config) MainModel {
	fps := max(int(time.Second/cfg.FrameInterval), 1)

	return MainModel{
		config:   cfg,
		state:    state.New(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		face:     components.NewFaceWidget(faceWidth, eyesHeight, mouthHeight),
		progress: anim.NewTween(0, cfg.ProgressDuration),
		fade:     anim.NewTween(0, cfg.FadeDuration),
		pulses:   anim.NewPulses(fps, cfg.SpringFrequency, cfg.SpringDamping, cfg.PulsePeak),
		now:      time.Now,
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return m.animateCmd()
}

// Commands
func (m *MainModel) animateCmd() tea.Cmd {
	return tea.Tick(m.config.FrameInterval, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

// SelectMood picks the mood at index and starts the face transition, the
// dot pulse and the joke fade. Out-of-range indices are rejected and leave
// the state untouched.
func (m *MainModel) SelectMood(index int) error {
	opt, err := mood.Lookup(index)
	if err != nil {
		log.Printf("rejected mood selection: %v", err)
		return err
	}

	now := m.now()
	m.state.Selection = mood.Selection(index)
	m.progress.Retarget(now, mood.Position(index))
	m.pulses.Trigger(index)
	m.fade.Restart(now, 0, 1)
	m.state.JokeOpacity = 0

	log.Printf("selected mood %d (%s), progress %.2f -> %.0f",
		index, opt.Name, m.state.Progress, mood.Position(index))
	return nil
}

// Reset clears the selection. The face keeps its expression but loses its mouth.
func (m *MainModel) Reset() {
	if !m.state.Selection.Valid() {
		return
	}
	m.state.Selection = mood.None
	m.fade = anim.NewTween(0, m.config.FadeDuration)
	m.state.JokeOpacity = 0
	m.syncFace()
	log.Printf("selection reset")
}

func (m *MainModel) step(delta int) {
	next := 1 // Neutral when nothing is selected
	if m.state.Selection.Valid() {
		next = int(m.state.Selection) + delta
	}
	if next < 0 || next >= mood.Count {
		return
	}
	_ = m.SelectMood(next)
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Sad):
		_ = m.SelectMood(0)
	case key.Matches(msg, m.keys.Neutral):
		_ = m.SelectMood(1)
	case key.Matches(msg, m.keys.Happy):
		_ = m.SelectMood(2)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Reset):
		m.Reset()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.advance(time.Time(msg))
	return m, m.animateCmd()
}

// advance copies the live animation values into the frame snapshot.
func (m *MainModel) advance(now time.Time) {
	m.state.Progress = m.progress.Value(now)
	m.pulses.Step()
	m.state.DotScales = m.pulses.Scales(mood.Count)
	m.state.JokeOpacity = m.fade.Value(now)
	m.syncFace()
}

func (m *MainModel) syncFace() {
	m.face.Update(components.FrameMsg{
		Progress:  m.state.Progress,
		ShowMouth: m.state.ShowMouth(),
	})
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	newW := min(max(msg.Width/3, 24), 48)
	m.face.Resize(newW, eyesHeight, mouthHeight)
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.config.EnableMouse {
		return m, nil
	}
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	for i := 0; i < mood.Count; i++ {
		if zone.Get(views.DotZoneID(i)).InBounds(msg) {
			_ = m.SelectMood(i)
			return m, nil
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	return views.RenderMood(m.state, m.width, m.height, m.face.View(), m.help.View(m.keys))
}

func Start(cfg config.Config) error {
	m := InitialModel(cfg)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(&m, opts...)
	_, err := p.Run()
	return err
}
