package questionnaire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/model"
)

// Session errors.
var (
	ErrUnknownOption   = errors.New("unknown option")
	ErrNotAnswered     = errors.New("question not answered")
	ErrInvalidLocation = errors.New("location must look like \"City, ST\" with a supported state")
)

// Session walks through the questions and accumulates answers. It is not
// safe for concurrent use; one user drives one session.
type Session struct {
	answers   model.Answers
	zone      climate.Zone
	questions []Question
	step      int
	done      bool
}

// NewSession starts a session at the first question.
func NewSession() *Session {
	return &Session{
		questions: Questions(),
		answers:   model.NewAnswers(),
		zone:      climate.DefaultZone,
	}
}

// Current returns the question being asked.
func (s *Session) Current() Question {
	return s.questions[s.step]
}

// Step returns the zero-based index of the current question.
func (s *Session) Step() int {
	return s.step
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Done reports whether the last question has been passed.
func (s *Session) Done() bool {
	return s.done
}

// Answers returns a copy of the collected answers.
func (s *Session) Answers() model.Answers {
	return s.answers.Clone()
}

// Zone returns the climate zone derived from the location answer.
func (s *Session) Zone() climate.Zone {
	return s.zone
}

// SetLocation stores the location and derives the climate from it. An
// unrecognized region keeps the text but leaves the temperate default zone.
func (s *Session) SetLocation(location string) {
	location = strings.TrimSpace(location)
	s.answers.Set(model.QuestionLocation, location)
	s.zone = climate.Lookup(location)
	if s.zone.Known {
		s.answers.Set(model.QuestionClimate, string(s.zone.Climate))
	} else {
		s.answers.Set(model.QuestionClimate, "")
	}
}

// Choose answers the current question with value. Radio questions replace
// their answer, checkbox questions toggle it.
func (s *Session) Choose(value string) error {
	q := s.Current()
	if q.Kind == KindLocation {
		s.SetLocation(value)
		return nil
	}
	if !hasOption(q, value) {
		return fmt.Errorf("%w: %q for %s", ErrUnknownOption, value, q.ID)
	}
	if q.Kind == KindCheckbox {
		s.answers.Toggle(q.ID, value)
	} else {
		s.answers.Set(q.ID, value)
	}
	return nil
}

// Selected reports whether value is currently chosen for the current question.
func (s *Session) Selected(value string) bool {
	return s.answers.Has(s.Current().ID, value)
}

// CanProceed reports whether the current question is answered.
func (s *Session) CanProceed() bool {
	return CanProceed(s.Current(), s.answers)
}

// Next advances to the following question, or marks the session done after
// the last one.
func (s *Session) Next() error {
	q := s.Current()
	if !s.CanProceed() {
		if q.Kind == KindLocation {
			return ErrInvalidLocation
		}
		return fmt.Errorf("%w: %s", ErrNotAnswered, q.ID)
	}
	if s.step < len(s.questions)-1 {
		s.step++
		return nil
	}
	s.done = true
	return nil
}

// Prev moves back one question. It also reopens a finished session.
func (s *Session) Prev() {
	if s.done {
		s.done = false
		return
	}
	if s.step > 0 {
		s.step--
	}
}

// Restart clears all answers and returns to the first question.
func (s *Session) Restart() {
	s.answers = model.NewAnswers()
	s.zone = climate.DefaultZone
	s.step = 0
	s.done = false
}

func hasOption(q Question, value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
