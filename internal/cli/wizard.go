package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/questionnaire"
)

// ErrWizardAborted is returned when the user quits before finishing.
var ErrWizardAborted = errors.New("wizard aborted")

// Wizard asks the questionnaire one line at a time. It suits terminals where
// the full-screen interface is unavailable.
type Wizard struct {
	reader          *NonBlockingReader
	writer          io.Writer
	defaultLocation string
}

// WizardOption configures a Wizard.
type WizardOption func(*Wizard)

// WithDefaultLocation pre-fills the location answer, e.g. from IP lookup.
func WithDefaultLocation(location string) WizardOption {
	return func(w *Wizard) {
		w.defaultLocation = location
	}
}

// NewWizard creates a line-based wizard.
func NewWizard(reader io.Reader, writer io.Writer, opts ...WizardOption) *Wizard {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	w := &Wizard{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run walks session to completion and returns the collected answers.
// Typing "b" goes back a question and "q" aborts.
func (w *Wizard) Run(ctx context.Context, session *questionnaire.Session) (model.Answers, error) {
	if _, err := fmt.Fprintln(w.writer, FormatTitle("Window Replacement Advisor")); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}

	for !session.Done() {
		q := session.Current()
		w.printQuestion(session, q)

		line, err := w.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrWizardAborted
			}
			return nil, err
		}

		switch strings.ToLower(line) {
		case "q", "quit":
			return nil, ErrWizardAborted
		case "b", "back":
			session.Prev()
			continue
		}

		if err := w.answer(session, q, line); err != nil {
			w.printf("%s\n", FormatWarning(err.Error()))
			continue
		}

		if err := session.Next(); err != nil {
			w.printf("%s\n", FormatWarning(nextErrorMessage(err)))
		}
	}

	return session.Answers(), nil
}

func (w *Wizard) printQuestion(session *questionnaire.Session, q questionnaire.Question) {
	w.printf("\n%s\n", SubtleStyle.Render(fmt.Sprintf("Question %d of %d", session.Step()+1, session.Len())))
	w.printf("%s\n", BoldStyle.Render(q.Title))
	w.printf("%s\n", SubtleStyle.Render(q.Explanation))

	switch q.Kind {
	case questionnaire.KindLocation:
		hint := "City, ST"
		if w.defaultLocation != "" {
			hint = "press enter for " + w.defaultLocation
		}
		w.printf("%s", FormatPrompt(fmt.Sprintf("Location (%s)", hint)))
		return
	case questionnaire.KindCheckbox:
		for i, o := range q.Options {
			mark := "[ ]"
			if session.Selected(o.Value) {
				mark = SelectedStyle.Render("[x]")
			}
			w.printf("  %d. %s %s %s\n", i+1, mark, o.Label, SubtleStyle.Render(o.Description))
		}
		w.printf("%s", FormatPrompt("Numbers separated by commas"))
	default:
		for i, o := range q.Options {
			mark := "( )"
			if session.Selected(o.Value) {
				mark = SelectedStyle.Render("(•)")
			}
			w.printf("  %d. %s %s %s\n", i+1, mark, o.Label, SubtleStyle.Render(o.Description))
		}
		w.printf("%s", FormatPrompt("Number"))
	}
}

func (w *Wizard) answer(session *questionnaire.Session, q questionnaire.Question, line string) error {
	switch q.Kind {
	case questionnaire.KindLocation:
		if line == "" {
			line = w.defaultLocation
		}
		session.SetLocation(line)
		return nil

	case questionnaire.KindCheckbox:
		if line == "" && session.CanProceed() {
			return nil
		}
		picked, err := parseChoices(line, len(q.Options))
		if err != nil {
			return err
		}
		want := make(map[string]bool, len(picked))
		for _, i := range picked {
			want[q.Options[i].Value] = true
		}
		for _, o := range q.Options {
			if session.Selected(o.Value) != want[o.Value] {
				if err := session.Choose(o.Value); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		if line == "" && session.CanProceed() {
			return nil
		}
		picked, err := parseChoices(line, len(q.Options))
		if err != nil {
			return err
		}
		if len(picked) != 1 {
			return fmt.Errorf("choose exactly one option")
		}
		return session.Choose(q.Options[picked[0]].Value)
	}
}

// parseChoices turns "1, 3" into zero-based indexes.
func parseChoices(line string, n int) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("enter a number between 1 and %d", n)
	}

	seen := make(map[int]bool, len(fields))
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil || i < 1 || i > n {
			return nil, fmt.Errorf("%q is not a number between 1 and %d", f, n)
		}
		if !seen[i-1] {
			seen[i-1] = true
			out = append(out, i-1)
		}
	}
	return out, nil
}

func nextErrorMessage(err error) string {
	switch {
	case errors.Is(err, questionnaire.ErrInvalidLocation):
		return "Enter a location like \"Seattle, WA\" in a supported state."
	case errors.Is(err, questionnaire.ErrNotAnswered):
		return "Please choose an option to continue."
	default:
		return err.Error()
	}
}

func (w *Wizard) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.writer, format, args...)
}
