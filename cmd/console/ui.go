package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mhollis/fable-engine/pkg/session"
)

const PlaceHolderText = "Type a command, e.g. Create character fighter Aria 100"

var titleCaser = cases.Title(language.English)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config        *ConsoleConfig
	client        *http.Client
	snap          *session.Snapshot
	transcript    []string
	chatViewport  viewport.Model
	metaViewport  viewport.Model
	textarea      textarea.Model
	ready         bool
	width         int
	height        int
	loading       bool
	showQuitModal bool
}

type commandResultMsg struct {
	command string
	result  *CommandResult
	err     error
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, snap *session.Snapshot) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		client:       client,
		snap:         snap,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 6
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		m.metaViewport.SetContent(writeRoster(m.snap))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil

		case tea.KeyCtrlY:
			if err := clipboard.WriteAll(strings.Join(m.transcript, "\n")); err == nil {
				m.metaViewport.SetContent(writeRoster(m.snap) + "\nTranscript copied.\n")
			}
			return m, nil

		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			m.textarea.Reset()
			m.loading = true
			m.transcript = append(m.transcript, "> "+input)
			m.writeChatContent()

			return m, m.sendCommand(input)
		}

	case commandResultMsg:
		m.loading = false
		if msg.err != nil {
			m.transcript = append(m.transcript, "Error: "+msg.err.Error())
		} else {
			m.transcript = append(m.transcript, msg.result.Output...)
			m.snap = msg.result.Session
			m.metaViewport.SetContent(writeRoster(m.snap))
		}
		m.writeChatContent()
		m.chatViewport.GotoBottom()
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(key.String()) {
		case "y", "enter", "ctrl+c":
			return m, tea.Quit
		case "n", "esc":
			m.showQuitModal = false
		}
	}
	return m, nil
}

func (m *ConsoleUI) sendCommand(input string) tea.Cmd {
	return func() tea.Msg {
		result, err := postCommand(m.client, m.config.APIBaseURL, m.snap, input)
		return commandResultMsg{command: input, result: result, err: err}
	}
}

func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6
	if chatWidth < 20 {
		chatWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("FABLE ENGINE") + "\n\n")
	content.WriteString("Type script commands below to tell the story.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth)) + "\n\n")

	for _, line := range m.transcript {
		content.WriteString(formatTranscriptLine(line, chatWidth) + "\n")
	}

	if m.loading {
		content.WriteString(promptStyle.Render("...") + "\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

// formatTranscriptLine styles one line: echoed commands teal, errors red,
// dialogue speakers highlighted, everything else green.
func formatTranscriptLine(line string, width int) string {
	wrapped := wordwrap.String(line, width)

	switch {
	case strings.HasPrefix(line, "> "):
		return userStyle.Render(wrapped)
	case strings.HasPrefix(line, "Error: "):
		return errorStyle.Render(wrapped)
	}

	if idx := strings.Index(wrapped, ": "); idx > 0 && idx <= 20 {
		return speakerStyle.Render(wrapped[:idx+1]) + outputStyle.Render(wrapped[idx+1:])
	}
	return outputStyle.Render(wrapped)
}

func writeRoster(snap *session.Snapshot) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("ROSTER") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(snap.ID.String()[:8] + "...\n\n")

	if len(snap.Characters) == 0 {
		content.WriteString("No characters yet.\n")
	}
	for _, c := range snap.Characters {
		content.WriteString(fmt.Sprintf("%s (%s)\n", c.Name, titleCaser.String(string(c.Class))))
		content.WriteString(fmt.Sprintf("  HP: %d\n", c.HP))
		if len(c.Weapons) > 0 {
			content.WriteString(fmt.Sprintf("  Weapons: %d\n", len(c.Weapons)))
		}
		if len(c.Potions) > 0 {
			content.WriteString(fmt.Sprintf("  Potions: %d\n", len(c.Potions)))
		}
		if len(c.Spells) > 0 {
			content.WriteString(fmt.Sprintf("  Spells: %d\n", len(c.Spells)))
		}
		content.WriteString("\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Run command\n")
	content.WriteString("• Ctrl+Y: Copy transcript\n")

	return content.String()
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showQuitModal {
		modal := modalStyle.Render("Quit Fable Engine?\n\n[y] yes   [n] no")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	chat := chatPanelStyle.Render(
		m.chatViewport.View() + "\n" + m.textarea.View(),
	)
	meta := metaPanelStyle.Render(m.metaViewport.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, chat, meta)
}
