package cli

import tea "github.com/charmbracelet/bubbletea"

// pushViewMsg pushes a view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// wizardCompleteMsg pops the wizard view and executes a follow-up command.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// noticeMsg shows a blocking modal notice. The user must dismiss it before
// any other interaction.
type noticeMsg struct {
	text string
}

// statusMsg shows a transient line in the footer, cleared on the next key.
type statusMsg struct {
	text string
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}
