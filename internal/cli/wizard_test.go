package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/questionnaire"
)

func TestWizard_Run(t *testing.T) {
	input := strings.Join([]string{
		"Nowhere",     // rejected: not City, ST
		"Seattle, WA", // location
		"7",           // out of range
		"2",           // budget: mid
		"1, 4",        // energy + cost
		"b",           // back to priorities
		"1",           // now energy only
		"3",           // Sliding
		"4",           // historic
	}, "\n") + "\n"

	var out bytes.Buffer
	answers, err := NewWizard(strings.NewReader(input), &out).Run(context.Background(), questionnaire.NewSession())
	require.NoError(t, err)

	assert.Equal(t, "Seattle, WA", answers.Location())
	assert.Equal(t, model.ClimateCold, answers.Climate())
	assert.Equal(t, model.BudgetMid, answers.Budget())
	assert.Equal(t, []model.Priority{model.PriorityEnergy}, answers.Priorities())
	assert.Equal(t, []model.WindowType{model.WindowSliding}, answers.WindowTypes())
	assert.Equal(t, model.HomeAgeHistoric, answers.HomeAge())

	assert.Contains(t, out.String(), "Question 1 of 5")
	assert.Contains(t, out.String(), "Seattle, WA")
	assert.Contains(t, out.String(), "not a number between 1 and 3")
}

func TestWizard_DefaultLocation(t *testing.T) {
	input := "\n1\n2\n1\n1\n"
	answers, err := NewWizard(strings.NewReader(input), io.Discard, WithDefaultLocation("Austin, TX")).
		Run(context.Background(), questionnaire.NewSession())
	require.NoError(t, err)
	assert.Equal(t, "Austin, TX", answers.Location())
	assert.Equal(t, model.ClimateHot, answers.Climate())
	assert.Equal(t, model.BudgetLow, answers.Budget())
}

func TestWizard_Abort(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"quit", "Seattle, WA\nq\n"},
		{"eof", "Seattle, WA\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWizard(strings.NewReader(tt.input), io.Discard).
				Run(context.Background(), questionnaire.NewSession())
			assert.ErrorIs(t, err, ErrWizardAborted)
		})
	}
}

func TestWizard_Canceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewWizard(pr, io.Discard).Run(ctx, questionnaire.NewSession())
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestParseChoices(t *testing.T) {
	got, err := parseChoices("3, 1 3", 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, got)

	_, err = parseChoices("", 4)
	assert.Error(t, err)
	_, err = parseChoices("5", 4)
	assert.Error(t, err)
	_, err = parseChoices("x", 4)
	assert.Error(t, err)
}

func TestNonBlockingReader(t *testing.T) {
	t.Run("trims and reads sequentially", func(t *testing.T) {
		r := NewNonBlockingReader(strings.NewReader("  one  \ntwo\nlast"))
		ctx := context.Background()

		for _, want := range []string{"one", "two", "last"} {
			got, err := r.ReadLine(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		_, err := r.ReadLine(ctx)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("already canceled", func(t *testing.T) {
		r := NewNonBlockingReader(strings.NewReader("data\n"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.ReadLine(ctx)
		assert.ErrorIs(t, err, ErrInputCancelled)
	})

	t.Run("line arriving after cancel goes to next read", func(t *testing.T) {
		pr, pw := io.Pipe()
		r := NewNonBlockingReader(pr)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := r.ReadLine(ctx)
		require.ErrorIs(t, err, ErrInputCancelled)

		go func() { _, _ = pw.Write([]byte("late\n")) }()
		got, err := r.ReadLine(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "late", got)
	})
}

func TestInterruptHandler(t *testing.T) {
	var out bytes.Buffer
	h := NewInterruptHandler(&out)
	ctx := h.HandleInterrupts(context.Background())

	assert.False(t, h.WasInterrupted())
	h.interrupt()
	h.interrupt()

	assert.True(t, h.WasInterrupted())
	assert.Error(t, ctx.Err())
	assert.Equal(t, 1, strings.Count(out.String(), "Wizard interrupted!"))
}
