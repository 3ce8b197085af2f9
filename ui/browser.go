package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"xtvkit/xtv"
	"xtvkit/xtv/xcomp"
)

// Browser is a small terminal walker over the component catalog of one
// file: the left column lists components, the right column the channels of
// the selected one.
type Browser struct {
	file   *xtv.File
	keys   []xcomp.Key
	cursor int
}

func NewBrowser(file *xtv.File) Browser {
	return Browser{
		file: file,
		keys: file.Components.Keys(),
	}
}

func Start(file *xtv.File) error {
	return tea.NewProgram(NewBrowser(file)).Start()
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.keys)-1 {
				b.cursor++
			}
		}
	}
	return b, nil
}

func (b Browser) View() string {
	output := strings.Builder{}
	output.WriteString(fmt.Sprintf("%s\n\n", strings.TrimSpace(b.file.Header.Title)))
	output.WriteString(fmt.Sprintf(
		"%d components, %d time edits\n\n",
		len(b.keys), len(b.file.Times),
	))

	for index, key := range b.keys {
		marker := "  "
		if index == b.cursor {
			marker = "> "
		}
		comp, _ := b.file.Components.Get(key)
		output.WriteString(fmt.Sprintf(
			"%s%-12s %s\n",
			marker, key.String(), strings.TrimSpace(comp.Title),
		))
	}

	if len(b.keys) > 0 {
		comp, _ := b.file.Components.Get(b.keys[b.cursor])
		output.WriteString("\nchannels:\n")
		for _, name := range comp.Channels.Keys() {
			channel, _ := comp.Channels.Get(name)
			output.WriteString(fmt.Sprintf(
				"  %-10s %-6s %s\n",
				channel.Name, channel.DimPosAt, strings.TrimSpace(channel.UnitLabel),
			))
		}
	}

	output.WriteString("\nup/down to move, q to quit\n")
	return output.String()
}
