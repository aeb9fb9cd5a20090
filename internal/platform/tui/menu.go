package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// menuStage is the step of the picker currently shown.
type menuStage int

const (
	stageLayout menuStage = iota
	stageDifficulty
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Name        string
	Description string
}

// MenuModel is the Bubble Tea model for the layout and difficulty picker.
type MenuModel struct {
	layouts      []MenuItem
	difficulties []MenuItem
	stage        menuStage
	cursor       int
	layout       string
	preset       config.DifficultyPreset
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	quitting     bool
	done         bool
}

// NewMenuModel creates a new menu over the layouts of cfg.
func NewMenuModel(cfg config.FroggerConfig, rt core.RuntimeConfig) MenuModel {
	names := cfg.LayoutNames()
	layouts := make([]MenuItem, 0, len(names))
	for _, name := range names {
		l, _ := cfg.Layout(name)
		layouts = append(layouts, MenuItem{Name: name, Description: l.Description})
	}

	difficulties := make([]MenuItem, 0, len(config.Presets))
	for _, p := range config.Presets {
		difficulties = append(difficulties, MenuItem{Name: string(p), Description: p.Description()})
	}

	return MenuModel{
		layouts:      layouts,
		difficulties: difficulties,
		width:        rt.ScreenW,
		height:       rt.ScreenH,
		config:       rt,
		keyMapper:    NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// items returns the entries of the current stage.
func (m MenuModel) items() []MenuItem {
	if m.stage == stageDifficulty {
		return m.difficulties
	}
	return m.layouts
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case MenuActionBack:
		if m.stage == stageDifficulty {
			m.stage = stageLayout
			m.cursor = m.indexOf(m.layouts, m.layout)
		}

	case MenuActionSelect:
		if len(items) == 0 {
			return m, nil
		}
		selected := items[m.cursor]
		if m.stage == stageLayout {
			m.layout = selected.Name
			m.stage = stageDifficulty
			m.cursor = m.indexOf(m.difficulties, string(config.DifficultyNormal))
			return m, nil
		}
		m.preset = config.DifficultyPreset(selected.Name)
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) indexOf(items []MenuItem, name string) int {
	for i, it := range items {
		if it.Name == name {
			return i
		}
	}
	return 0
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  F R O G G E R  ", m.width))
	b.WriteString("\n\n")

	subtitle := "Select a layout"
	if m.stage == stageDifficulty {
		subtitle = fmt.Sprintf("Layout: %s  -  select difficulty", m.layout)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, item.Name, item.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selection returns the chosen layout and preset; ok is false until both
// have been picked.
func (m MenuModel) Selection() (layout string, preset config.DifficultyPreset, ok bool) {
	return m.layout, m.preset, m.done
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Layout string
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.FroggerConfig, rt core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rt}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rt, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	layout, preset, picked := m.Selection()
	if m.IsQuitting() || !picked {
		result.Quit = true
		return result, nil
	}
	result.Layout = layout
	result.Preset = preset
	return result, nil
}
