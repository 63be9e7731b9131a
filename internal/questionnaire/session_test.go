package questionnaire

import (
	"testing"

	"github.com/Veraticus/windowwise/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsOrder(t *testing.T) {
	var ids []model.QuestionID
	for _, q := range Questions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []model.QuestionID{
		model.QuestionLocation,
		model.QuestionBudget,
		model.QuestionPriority,
		model.QuestionWindowTypes,
		model.QuestionHomeAge,
	}, ids)
}

func TestSession_FullWalkthrough(t *testing.T) {
	s := NewSession()

	assert.ErrorIs(t, s.Next(), ErrInvalidLocation)

	require.NoError(t, s.Choose("Seattle, WA"))
	assert.Equal(t, "4C", s.Zone().Code)
	require.NoError(t, s.Next())

	assert.Equal(t, model.QuestionBudget, s.Current().ID)
	assert.ErrorIs(t, s.Next(), ErrNotAnswered)
	require.NoError(t, s.Choose("mid"))
	require.NoError(t, s.Choose("budget"))
	require.NoError(t, s.Next())

	require.NoError(t, s.Choose("energy"))
	require.NoError(t, s.Choose("cost"))
	require.NoError(t, s.Choose("energy"))
	assert.True(t, s.Selected("cost"))
	assert.False(t, s.Selected("energy"))
	require.NoError(t, s.Next())

	assert.ErrorIs(t, s.Choose("Bay"), ErrUnknownOption)
	require.NoError(t, s.Choose("Sliding"))
	require.NoError(t, s.Next())

	require.NoError(t, s.Choose("historic"))
	require.NoError(t, s.Next())
	assert.True(t, s.Done())

	got := s.Answers()
	assert.Equal(t, "Seattle, WA", got.Location())
	assert.Equal(t, model.ClimateCold, got.Climate())
	assert.Equal(t, model.BudgetLow, got.Budget())
	assert.Equal(t, []model.Priority{model.PriorityCost}, got.Priorities())
	assert.Equal(t, []model.WindowType{model.WindowSliding}, got.WindowTypes())
	assert.Equal(t, model.HomeAgeHistoric, got.HomeAge())

	s.Prev()
	assert.False(t, s.Done())
	assert.Equal(t, model.QuestionHomeAge, s.Current().ID)
}

func TestSession_UnknownLocation(t *testing.T) {
	s := NewSession()
	s.SetLocation("Seattle, WA")
	s.SetLocation("Portland, OR")

	assert.False(t, s.CanProceed())
	assert.False(t, s.Zone().Known)
	assert.Equal(t, model.Climate(""), s.Answers().Climate(), "stale climate is cleared")
	assert.Equal(t, "Portland, OR", s.Answers().Location())
}

func TestSession_PrevAndRestart(t *testing.T) {
	s := NewSession()
	s.Prev()
	assert.Equal(t, 0, s.Step())

	s.SetLocation("Austin, TX")
	require.NoError(t, s.Next())
	assert.Equal(t, 1, s.Step())

	s.Restart()
	assert.Equal(t, 0, s.Step())
	assert.Empty(t, s.Answers())
	assert.Equal(t, 5, s.Len())
}

func TestSession_AnswersIsACopy(t *testing.T) {
	s := NewSession()
	s.SetLocation("Miami, FL")

	a := s.Answers()
	a.Set(model.QuestionLocation, "elsewhere")
	assert.Equal(t, "Miami, FL", s.Answers().Location())
}
