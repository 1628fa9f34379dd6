package cli

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/davidmoss/plank/internal/cli/formatter"
	"github.com/davidmoss/plank/internal/validate"
)

// invalidInputNotice is the single generic failure message shown when any
// submitted field fails its policy. No per-field detail is surfaced.
const invalidInputNotice = "Invalid input, please try again!"

// newProjectFormView creates the wizard form for submitting a new project.
// The form only gathers values; the whole policy is evaluated on submit so
// a failure produces one blocking notice rather than inline errors. A fresh
// form (with cleared inputs) is built on every invocation.
func newProjectFormView(state *SharedState) View {
	var title, description, people string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Project title").
				Value(&title),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&description),
			huh.NewInput().
				Title("People (1-5)").
				Placeholder("1").
				Value(&people),
		),
	).WithTheme(plankHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			if !submissionValid(title, description, people) {
				return noticeMsg{text: invalidInputNotice}
			}

			count, _ := strconv.Atoi(people)
			p := state.App.Store.Add(title, description, count)

			return statusMsg{text: formatter.StyleGreen.Render("✔") + " Added: " +
				formatter.Bold(p.Title) + " " + formatter.Dim("("+p.PeopleLabel()+")")}
		}
	}

	return newWizardView(state, "New Project", form, done)
}

// submissionValid applies the fixed field policy: title required with min
// length 1, description required but may be empty, people a number in [1, 5].
func submissionValid(title, description, people string) bool {
	var peopleVal any
	if n, err := strconv.Atoi(people); err == nil {
		peopleVal = n
	}

	titleOK := validate.OK(validate.Field{
		Value:     title,
		Required:  true,
		MinLength: validate.Int(1),
	})
	descOK := validate.OK(validate.Field{
		Value:     description,
		Required:  true,
		MinLength: validate.Int(0),
	})
	peopleOK := validate.OK(validate.Field{
		Value:    peopleVal,
		Required: true,
		Min:      validate.Float(1),
		Max:      validate.Float(5),
	})

	return titleOK && descOK && peopleOK
}
