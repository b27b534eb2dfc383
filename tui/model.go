// Package tui is the interactive front end: pick a MIDI file, convert
// it, preview the MIDA document, and drop it on the clipboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Mirror-Prismals/TrackMIDA/config"
	"github.com/Mirror-Prismals/TrackMIDA/mida"
	"github.com/Mirror-Prismals/TrackMIDA/midifile"
	"github.com/Mirror-Prismals/TrackMIDA/theme"
)

// previewLimit caps how much of the document the result screen shows.
const previewLimit = 500

type state int

const (
	statePick state = iota
	stateResult
	stateError
)

type keyMap struct {
	Quit key.Binding
	Back key.Binding
	Copy key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Copy, k.Back, k.Quit}}
}

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pick another file")),
	Copy: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy again")),
}

type Model struct {
	cfg   *config.Config
	theme *theme.Theme

	state  state
	picker filepicker.Model
	help   help.Model

	path     string
	document string
	copied   bool
	copyErr  error
	err      error

	quitting bool
}

func NewModel(cfg *config.Config, th *theme.Theme) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".mid", ".midi"}
	fp.CurrentDirectory = cfg.StartDir
	fp.Height = 16

	return Model{
		cfg:    cfg,
		theme:  th,
		state:  statePick,
		picker: fp,
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Back):
			if m.state != statePick {
				m.state = statePick
				m.err = nil
				return m, m.picker.Init()
			}

		case key.Matches(msg, keys.Copy):
			if m.state == stateResult {
				m.copyErr = clipboard.WriteAll(m.document)
				m.copied = m.copyErr == nil
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.picker.Height = msg.Height - 4
		m.help.Width = msg.Width
	}

	if m.state != statePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.convert(path)
		return m, cmd
	}
	return m, cmd
}

// convert loads the chosen file, encodes it, and copies the document
// to the clipboard when configured to.
func (m *Model) convert(path string) {
	m.path = path
	m.copied = false
	m.copyErr = nil

	song, err := midifile.Load(path)
	if err != nil {
		log.Error("failed to load MIDI file", "path", path, "err", err)
		m.err = err
		m.state = stateError
		return
	}

	m.document = mida.Encode(song)
	m.state = stateResult
	log.Info("converted", "path", path, "bytes", len(m.document))

	if m.cfg.CopyToClipboard {
		m.copyErr = clipboard.WriteAll(m.document)
		m.copied = m.copyErr == nil
		if m.copyErr != nil {
			log.Warn("clipboard unavailable", "err", m.copyErr)
		}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.theme.Header().Render("TrackMIDA")
	dim := m.theme.Dim()

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")

	switch m.state {
	case statePick:
		out.WriteString(dim.Render("Select a MIDI file"))
		out.WriteString("\n\n")
		out.WriteString(m.picker.View())
		out.WriteString("\n")
		out.WriteString(dim.Render("enter:select  backspace:up  q:quit"))

	case stateResult:
		preview := m.document
		if len(preview) > previewLimit {
			preview = preview[:previewLimit] + "..."
		}
		out.WriteString(dim.Render(m.path))
		out.WriteString("\n\n")
		out.WriteString(m.theme.Preview().Render(preview))
		out.WriteString("\n\n")
		switch {
		case m.copied:
			out.WriteString(m.theme.Notice().Render("MIDA code copied to clipboard - paste it into your editor"))
		case m.copyErr != nil:
			out.WriteString(m.theme.Fail().Render(fmt.Sprintf("clipboard error: %v", m.copyErr)))
		default:
			out.WriteString(dim.Render("clipboard copy disabled"))
		}
		out.WriteString("\n\n")
		out.WriteString(m.help.View(keys))

	case stateError:
		out.WriteString(m.theme.Fail().Render(fmt.Sprintf("Failed to load MIDI file:\n%v", m.err)))
		out.WriteString("\n\n")
		out.WriteString(dim.Render("esc:pick another file  q:quit"))
	}

	out.WriteString("\n")
	return out.String()
}
