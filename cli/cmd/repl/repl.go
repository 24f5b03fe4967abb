package repl

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nuposix/nuposix/log"
	"github.com/nuposix/nuposix/nush"
	"github.com/nuposix/nuposix/posix"
)

const (
	convertPrompt = "➜ "
	filterPrompt  = " /"
)

func helpMessage() string {
	return `
Type POSIX export statements to convert them:

  export NAME=value [&& export OTHER=value ...]

Keys:
  Enter       Convert the current line and add it to the session
  Ctrl+F      Toggle filter mode (fuzzy match on variable names)
  Ctrl+L      Clear the session
  Ctrl+C/D    Exit (Ctrl+C clears a non-empty line first)
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeConvert inputMode = iota
	modeFilter
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	filterPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("5")).
				Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	matchStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
)

// formatCommand formats the input echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(convertPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc  func() context.Context
	input    textinput.Model
	renderer nush.Renderer
	session  []posix.Export
	filter   string
	mode     inputMode
	width    int
	quitting bool

	// Saved per-mode input state so toggling preserves partial lines.
	convertText   string
	convertCursor int
}

// Run starts the interactive converter with the given assignment prefix.
func Run(ctx context.Context, prefix string) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	log.DebugContext(ctx, "repl start")

	m := newModel(ctx, prefix)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, prefix string) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(convertPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:  func() context.Context { return ctx },
		input:    ti,
		renderer: nush.Renderer{Prefix: prefix},
		width:    defaultWidth,
		mode:     modeConvert,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(convertPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.mode == modeFilter:
		b.WriteString(m.sessionView(m.input.Value()))

	case strings.TrimSpace(m.input.Value()) == "":
		hint := "Type an export statement, Ctrl+F to filter, Ctrl+C to exit"
		if len(m.session) == 0 {
			hint = "Type an export statement (try: export PATH=/usr/bin)"
		}

		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")

	default:
		// Live preview of what Enter would emit.
		preview := m.renderer.Render(posix.Parse(m.input.Value()))
		if preview == "" {
			b.WriteString(hintStyle.Render("no export statements recognized"))
		} else {
			b.WriteString(resultStyle.Render(preview))
		}

		b.WriteString("\n")
	}

	return b.String()
}

// sessionView renders the accumulated session assignments, restricted and
// highlighted by the given fuzzy pattern when non-empty.
func (m model) sessionView(pattern string) string {
	if len(m.session) == 0 {
		return hintStyle.Render("session is empty") + "\n"
	}

	matched := filterSession(m.session, pattern)
	if len(matched) == 0 {
		return hintStyle.Render("no names match "+pattern) + "\n"
	}

	var b strings.Builder

	for _, entry := range matched {
		b.WriteString("  ")
		b.WriteString(renderMatchedName(entry))
		b.WriteString(hintStyle.Render(" = "))
		b.WriteString(resultStyle.Render(nush.Quote(entry.export.Value)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyCtrlL:
		m.session = nil
		m.filter = ""

		return m, tea.ClearScreen

	case tea.KeyCtrlF:
		return m.toggleMode()

	case tea.KeyEnter:
		return m.executeInput()

	case tea.KeyEsc:
		if m.mode == modeFilter {
			m.input.SetValue("")

			return m.toggleMode()
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())

	if m.mode == modeFilter {
		// Lock in the filter and return to conversion.
		m.filter = input
		m.input.SetValue("")

		return m.toggleMode()
	}

	if input == "" {
		return m, tea.Println(hintStyle.Render(helpMessage()))
	}

	m.input.SetValue("")

	echoCmd := tea.Println(formatCommand(input))

	exports := posix.Parse(input)
	if len(exports) == 0 {
		return m, tea.Sequence(
			echoCmd,
			tea.Println(hintStyle.Render("no export statements recognized")),
		)
	}

	m.session = append(m.session, exports...)

	return m, tea.Sequence(
		echoCmd,
		tea.Println(resultStyle.Render(m.renderer.Render(exports))),
	)
}

// toggleMode switches between conversion and filter input, preserving the
// partial conversion line across the round trip.
func (m model) toggleMode() (model, tea.Cmd) {
	if m.mode == modeConvert {
		m.convertText = m.input.Value()
		m.convertCursor = m.input.Position()

		m.mode = modeFilter
		m.input.Prompt = filterPromptStyle.Render(filterPrompt)
		m.input.SetValue(m.filter)
		m.input.SetCursor(len(m.filter))

		return m, nil
	}

	m.mode = modeConvert
	m.input.Prompt = promptStyle.Render(convertPrompt)
	m.input.SetValue(m.convertText)
	m.input.SetCursor(m.convertCursor)

	return m, nil
}
