package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/urbancharge/urbancharge/pkg/buildinfo"
	"github.com/urbancharge/urbancharge/pkg/community"
	errs "github.com/urbancharge/urbancharge/pkg/errors"
	"github.com/urbancharge/urbancharge/pkg/io"
	"github.com/urbancharge/urbancharge/pkg/render/nodelink"
	"github.com/urbancharge/urbancharge/pkg/solver"
)

// maxConsoleCities bounds the cities created from the console, named A to Z.
const maxConsoleCities = 26

var (
	menuKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	menuTextStyle = lipgloss.NewStyle().Foreground(colorWhite)
	promptStyle   = lipgloss.NewStyle().Foreground(colorCyan)
)

// step is a screen of the console.
type step int

const (
	stepCityCount step = iota
	stepRoadMenu
	stepRoadInput
	stepMainMenu
	stepManualMenu
	stepManualAdd
	stepManualRemove
	stepAlgoMenu
	stepIterations
	stepSavePath
)

type messageKind int

const (
	msgInfo messageKind = iota
	msgSuccess
	msgWarning
	msgError
)

// solvedMsg carries the community a solver run produced.
type solvedMsg struct {
	uc  *community.UrbanCommunity
	res solver.Result
	err error
}

// renderedMsg reports the outcome of drawing the community.
type renderedMsg struct {
	path string
	err  error
}

// consoleOptions configures a console session.
type consoleOptions struct {
	iterations int    // default iteration budget
	seed       uint64 // 0 picks a fresh seed per run
	format     nodelink.Format
	scale      float64
	renderPath string
	renderer   *nodelink.Renderer
	open       func(path string) error // nil leaves rendered images closed
}

// ConsoleModel is the bubbletea model for the interactive console.
//
// A session without a file starts by asking for the number of cities and the
// roads between them, then gives every city a charging point. A session with
// a file starts at the main menu.
type ConsoleModel struct {
	ctx  context.Context
	opts consoleOptions

	uc        *community.UrbanCommunity
	step      step
	input     textinput.Model
	algorithm string

	message     string
	messageKind messageKind
	busy        bool
	quitting    bool
	runs        int
}

// newConsoleModel creates a console. uc may be nil to start from scratch.
func newConsoleModel(ctx context.Context, uc *community.UrbanCommunity, opts consoleOptions) ConsoleModel {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40
	ti.Prompt = "› "

	m := ConsoleModel{
		ctx:   ctx,
		opts:  opts,
		uc:    uc,
		input: ti,
	}
	if uc == nil {
		m.ask(stepCityCount, fmt.Sprintf("1-%d", maxConsoleCities))
	} else {
		m.step = stepMainMenu
	}
	return m
}

func (m ConsoleModel) Init() tea.Cmd {
	if m.input.Focused() {
		return textinput.Blink
	}
	return nil
}

func (m ConsoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solvedMsg:
		m.busy = false
		m.solved(msg)
		return m, nil

	case renderedMsg:
		m.busy = false
		m.rendered(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if msg.Type == tea.KeyEsc {
			m.back()
			return m, nil
		}
		if m.input.Focused() {
			if msg.Type == tea.KeyEnter {
				return m.submit(strings.TrimSpace(m.input.Value()))
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m.choose(msg.String())
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// choose handles a key pressed on a menu screen.
func (m ConsoleModel) choose(key string) (tea.Model, tea.Cmd) {
	m.message = ""

	switch m.step {
	case stepRoadMenu:
		switch key {
		case "1":
			cmd := m.ask(stepRoadInput, "A B")
			return m, cmd
		case "2":
			solver.AddAllChargingPoints(m.uc)
			m.step = stepMainMenu
			m.say(msgInfo, "Every city now has a charging point")
		}

	case stepMainMenu:
		switch key {
		case "1":
			if !m.uc.IsValid() {
				solver.AddAllChargingPoints(m.uc)
				m.say(msgWarning, "Some cities had no access; every city now has a charging point")
			}
			m.step = stepManualMenu
		case "2":
			m.step = stepAlgoMenu
		case "3":
			cmd := m.ask(stepSavePath, "community.txt")
			return m, cmd
		case "4":
			m.busy = true
			m.say(msgInfo, "Rendering...")
			return m, m.renderCmd()
		case "5", "q":
			m.quitting = true
			return m, tea.Quit
		}

	case stepManualMenu:
		switch key {
		case "1":
			cmd := m.ask(stepManualAdd, "city")
			return m, cmd
		case "2":
			cmd := m.ask(stepManualRemove, "city")
			return m, cmd
		case "3":
			m.step = stepMainMenu
		}

	case stepAlgoMenu:
		switch key {
		case "1":
			m.algorithm = solver.StrategyNaive
			cmd := m.ask(stepIterations, strconv.Itoa(m.opts.iterations))
			return m, cmd
		case "2":
			m.algorithm = solver.StrategyLessNaive
			cmd := m.ask(stepIterations, strconv.Itoa(m.opts.iterations))
			return m, cmd
		case "3":
			m.algorithm = solver.StrategyOptimized
			return m.solve(0)
		case "4":
			m.step = stepMainMenu
		}
	}
	return m, nil
}

// submit handles the value entered on an input screen.
func (m ConsoleModel) submit(value string) (tea.Model, tea.Cmd) {
	m.message = ""

	switch m.step {
	case stepCityCount:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > maxConsoleCities {
			m.say(msgError, fmt.Sprintf("Enter a number between 1 and %d", maxConsoleCities))
			return m, nil
		}
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('A' + i))
		}
		uc, err := community.FromNames(names...)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.uc = uc
		m.blur(stepRoadMenu)
		m.say(msgSuccess, fmt.Sprintf("Created cities %s to %s", names[0], names[n-1]))

	case stepRoadInput:
		ends := strings.FieldsFunc(value, func(r rune) bool { return r == ' ' || r == ',' || r == '-' })
		if len(ends) != 2 {
			m.say(msgError, "Enter two city names, e.g. A B")
			return m, nil
		}
		m.blur(stepRoadMenu)
		if err := m.uc.AddRoad(ends[0], ends[1]); err != nil {
			m.fail(err)
			return m, nil
		}
		m.say(msgSuccess, fmt.Sprintf("Added road %s-%s", ends[0], ends[1]))

	case stepManualAdd:
		m.blur(stepManualMenu)
		if err := m.uc.AddChargingPoint(value); err != nil {
			m.fail(err)
			return m, nil
		}
		m.say(msgSuccess, "Added a charging point in "+value)

	case stepManualRemove:
		m.blur(stepManualMenu)
		r, err := m.uc.TryRemoveChargingPoint(value)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		if !r.OK() {
			m.say(msgWarning, errs.UserMessage(r.Err()))
			return m, nil
		}
		m.say(msgSuccess, "Removed the charging point of "+value)

	case stepIterations:
		n := m.opts.iterations
		if value != "" {
			v, err := strconv.Atoi(value)
			if err != nil || v <= 0 {
				m.say(msgError, "Enter a positive number of iterations")
				return m, nil
			}
			n = v
		}
		m.blur(stepAlgoMenu)
		return m.solve(n)

	case stepSavePath:
		if err := errs.ValidatePath(value); err != nil {
			m.fail(err)
			return m, nil
		}
		m.blur(stepMainMenu)
		if err := io.SaveFile(m.uc, value); err != nil {
			m.fail(err)
			return m, nil
		}
		m.say(msgSuccess, "Saved to "+value)
	}
	return m, nil
}

// solve starts the chosen strategy on a copy of the community.
func (m ConsoleModel) solve(iterations int) (tea.Model, tea.Cmd) {
	m.busy = true
	m.say(msgInfo, "Solving with "+m.algorithm+"...")

	req := solver.Request{
		Strategy:   m.algorithm,
		Iterations: iterations,
		Seed:       m.opts.seed + uint64(m.runs),
	}
	if m.opts.seed == 0 {
		req.Seed = randomSeed()
	}
	m.runs++

	ctx, work := m.ctx, m.uc.Clone()
	return m, func() tea.Msg {
		res, err := solver.Run(ctx, work, req)
		return solvedMsg{uc: work, res: res, err: err}
	}
}

func (m *ConsoleModel) solved(msg solvedMsg) {
	m.step = stepMainMenu
	if msg.err != nil {
		m.fail(msg.err)
		return
	}
	m.uc = msg.uc
	m.say(msgSuccess, fmt.Sprintf("%s: %d %s %d charging points in %d steps",
		msg.res.Strategy, msg.res.InitialScore, iconArrow, msg.res.FinalScore, msg.res.Stats.Steps))
}

func (m ConsoleModel) renderCmd() tea.Cmd {
	ctx, uc, opts := m.ctx, m.uc.Clone(), m.opts
	return func() tea.Msg {
		err := renderToFile(ctx, opts.renderer, uc, nodelink.Options{Format: opts.format, Scale: opts.scale}, opts.renderPath)
		return renderedMsg{path: opts.renderPath, err: err}
	}
}

func (m *ConsoleModel) rendered(msg renderedMsg) {
	if msg.err != nil {
		m.say(msgWarning, "Could not render the community: "+errs.UserMessage(msg.err))
		return
	}
	if m.opts.open != nil {
		if err := m.opts.open(msg.path); err != nil {
			m.say(msgWarning, "Rendered to "+msg.path+" but could not open it: "+errs.UserMessage(err))
			return
		}
	}
	m.say(msgSuccess, "Rendered to "+msg.path)
}

// back leaves the current screen for the menu above it.
func (m *ConsoleModel) back() {
	m.message = ""
	switch m.step {
	case stepRoadInput:
		m.blur(stepRoadMenu)
	case stepManualAdd, stepManualRemove:
		m.blur(stepManualMenu)
	case stepIterations:
		m.blur(stepAlgoMenu)
	case stepManualMenu, stepAlgoMenu, stepSavePath:
		m.blur(stepMainMenu)
	}
}

// ask switches to an input screen.
func (m *ConsoleModel) ask(s step, placeholder string) tea.Cmd {
	m.step = s
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

// blur switches to a menu screen.
func (m *ConsoleModel) blur(s step) {
	m.step = s
	m.input.Reset()
	m.input.Blur()
}

func (m *ConsoleModel) say(kind messageKind, text string) {
	m.messageKind = kind
	m.message = text
}

func (m *ConsoleModel) fail(err error) {
	m.say(msgError, errs.UserMessage(err))
}

func (m ConsoleModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(" " + StyleDim.Render(buildinfo.Short()))
	b.WriteString("\n\n")

	if m.uc != nil && m.step != stepRoadMenu && m.step != stepRoadInput {
		b.WriteString(communityTable(m.uc))
		b.WriteString("\n")
		b.WriteString(scoreLine(m.uc))
		b.WriteString("\n\n")
	} else if m.uc != nil {
		b.WriteString(StyleDim.Render(roadSummary(m.uc)))
		b.WriteString("\n\n")
	}

	if m.message != "" {
		b.WriteString(m.renderMessage())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderPrompt())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("esc back  ctrl+c quit"))
	return b.String()
}

func (m ConsoleModel) renderMessage() string {
	switch m.messageKind {
	case msgSuccess:
		return styleIconSuccess.Render(iconSuccess) + " " + m.message
	case msgWarning:
		return styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(m.message)
	case msgError:
		return styleIconError.Render(iconError) + " " + StyleError.Render(m.message)
	}
	return styleIconInfo.Render(iconInfo) + " " + m.message
}

func (m ConsoleModel) renderPrompt() string {
	switch m.step {
	case stepCityCount:
		return prompt("How many cities?", m.input)
	case stepRoadMenu:
		return menu("Roads", "Add a road", "Done")
	case stepRoadInput:
		return prompt("Road between which two cities?", m.input)
	case stepMainMenu:
		return menu("Main menu", "Place charging points by hand", "Place charging points automatically", "Save", "Show the graph", "Quit")
	case stepManualMenu:
		return menu("Charging points", "Add a charging point", "Remove a charging point", "Done")
	case stepManualAdd:
		return prompt("Add a charging point in which city?", m.input)
	case stepManualRemove:
		return prompt("Remove the charging point of which city?", m.input)
	case stepAlgoMenu:
		return menu("Algorithm", "Naive", "Less naive", "Optimized", "Back")
	case stepIterations:
		return prompt("How many iterations?", m.input)
	case stepSavePath:
		return prompt("Save to which file?", m.input)
	}
	return ""
}

func menu(title string, items ...string) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	for i, item := range items {
		b.WriteString("\n  ")
		b.WriteString(menuKeyStyle.Render(strconv.Itoa(i + 1)))
		b.WriteString(" ")
		b.WriteString(menuTextStyle.Render(item))
	}
	return b.String()
}

func prompt(question string, input textinput.Model) string {
	return promptStyle.Render(question) + "\n" + input.View()
}

func roadSummary(uc *community.UrbanCommunity) string {
	roads := uc.Roads()
	if len(roads) == 0 {
		return fmt.Sprintf("%d cities, no roads yet", uc.Len())
	}
	parts := make([]string, len(roads))
	for i, r := range roads {
		parts[i] = r.From + "-" + r.To
	}
	return fmt.Sprintf("%d cities, roads: %s", uc.Len(), strings.Join(parts, " "))
}
