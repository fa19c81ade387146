package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always draws the same value.
type fixedSource struct{ v int }

func (f fixedSource) IntRange(min, max int) int { return f.v }

func newTestEngine(t *testing.T, target int, maxAttempts uint8, min, max int) *Engine {
	t.Helper()
	e, err := NewEngine(fixedSource{v: target}, maxAttempts, min, max)
	require.NoError(t, err)
	e.StartRound()
	return e
}

func TestNewEngine_RejectsBadConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		src         RandomSource
		maxAttempts uint8
		min, max    int
		field       string
	}{
		{"nil source", nil, 3, 1, 10, "random source"},
		{"zero attempts", fixedSource{}, 0, 1, 10, "max attempts"},
		{"equal bounds", fixedSource{}, 3, 5, 5, "bounds"},
		{"inverted bounds", fixedSource{}, 3, 10, 1, "bounds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.src, tt.maxAttempts, tt.min, tt.max)
			assert.Nil(t, e)
			require.ErrorIs(t, err, ErrConfiguration)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewEngine_BoundsMessageNamesBoth(t *testing.T) {
	_, err := NewEngine(fixedSource{}, 3, 10, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10")
	assert.Contains(t, err.Error(), "1")
}

func TestNewEngine_Accessors(t *testing.T) {
	e, err := NewEngine(fixedSource{}, 7, -3, 3)
	require.NoError(t, err)
	assert.Equal(t, -3, e.Min())
	assert.Equal(t, 3, e.Max())
	assert.Equal(t, uint8(7), e.MaxAttempts())
	assert.Equal(t, uint8(0), e.Attempts())
}

func TestStartRound_TargetWithinBounds(t *testing.T) {
	bounds := [][2]int{{1, 100}, {-10, 10}, {0, 1}, {-5, -4}}
	src := NewSeededSource(42)
	for _, b := range bounds {
		e, err := NewEngine(src, 5, b[0], b[1])
		require.NoError(t, err)
		for i := 0; i < 500; i++ {
			e.StartRound()
			assert.GreaterOrEqual(t, e.target, b[0])
			assert.LessOrEqual(t, e.target, b[1])
		}
	}
}

func TestStartRound_BothEndpointsReachable(t *testing.T) {
	e, err := NewEngine(NewSeededSource(7), 5, 1, 3)
	require.NoError(t, err)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		e.StartRound()
		seen[e.target] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen)
}

func TestStartRound_ResetsAttempts(t *testing.T) {
	e := newTestEngine(t, 5, 10, 1, 10)
	_, _ = e.SubmitGuess("1")
	_, _ = e.SubmitGuess("2")
	require.Equal(t, uint8(2), e.Attempts())

	e.StartRound()
	assert.Equal(t, uint8(0), e.Attempts())
}

func TestSubmitGuess_Outcomes(t *testing.T) {
	tests := []struct {
		answer string
		want   Outcome
	}{
		{"50", Correct},
		{" 50 ", Correct},
		{"+50", Correct},
		{"75", GreaterThan},
		{"100", GreaterThan},
		{"101", AboveMaximum},
		{"25", LessThan},
		{"1", LessThan},
		{"0", BelowMinimum},
		{"-5", BelowMinimum},
		{"abc", NotANumber},
		{"", NotANumber},
		{"   ", NotANumber},
		{"12.5", NotANumber},
		{"5e2", NotANumber},
		{"99999999999999999999999", NotANumber},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			e := newTestEngine(t, 50, 20, 1, 100)
			got, err := e.SubmitGuess(tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, uint8(1), e.Attempts())
		})
	}
}

func TestSubmitGuess_CountsEveryAttempt(t *testing.T) {
	e := newTestEngine(t, 50, 20, 1, 100)
	for i, answer := range []string{"abc", "", "12.5", "10", "50"} {
		_, err := e.SubmitGuess(answer)
		require.NoError(t, err)
		assert.Equal(t, uint8(i+1), e.Attempts())
	}
}

func TestSubmitGuess_ScenarioLimitReachedOnCorrectGuess(t *testing.T) {
	e := newTestEngine(t, 50, 3, 1, 100)

	got, err := e.SubmitGuess("75")
	require.NoError(t, err)
	assert.Equal(t, GreaterThan, got)
	assert.Equal(t, uint8(1), e.Attempts())

	got, err = e.SubmitGuess("abc")
	require.NoError(t, err)
	assert.Equal(t, NotANumber, got)
	assert.Equal(t, uint8(2), e.Attempts())

	// Third guess reaches the limit exactly, so even the right number loses.
	got, err = e.SubmitGuess("50")
	require.NoError(t, err)
	assert.Equal(t, TooManyGuesses, got)
	assert.Equal(t, uint8(3), e.Attempts())
}

func TestSubmitGuess_SingleAttemptNeverWins(t *testing.T) {
	e := newTestEngine(t, 7, 1, 1, 10)
	got, err := e.SubmitGuess("7")
	require.NoError(t, err)
	assert.Equal(t, TooManyGuesses, got)
	assert.Equal(t, uint8(1), e.Attempts())
}

func TestSubmitGuess_CorrectBeforeLimit(t *testing.T) {
	e := newTestEngine(t, 7, 3, 1, 10)
	_, _ = e.SubmitGuess("3")
	got, err := e.SubmitGuess("7")
	require.NoError(t, err)
	assert.Equal(t, Correct, got)
}

func TestSubmitGuess_KeepsCountingPastLimit(t *testing.T) {
	e := newTestEngine(t, 7, 2, 1, 10)
	for i := 1; i <= 10; i++ {
		got, err := e.SubmitGuess("3")
		require.NoError(t, err)
		if i < 2 {
			assert.Equal(t, LessThan, got)
		} else {
			assert.Equal(t, TooManyGuesses, got)
		}
		assert.Equal(t, uint8(i), e.Attempts())
	}
}

func TestSubmitGuess_OverflowIsFatal(t *testing.T) {
	e := newTestEngine(t, 7, 2, 1, 10)
	e.attempts = 254

	got, err := e.SubmitGuess("7")
	require.NoError(t, err)
	assert.Equal(t, TooManyGuesses, got)
	assert.Equal(t, uint8(255), e.Attempts())

	got, err = e.SubmitGuess("7")
	require.ErrorIs(t, err, ErrAttemptOverflow)
	assert.Equal(t, Outcome(""), got)
	assert.Equal(t, uint8(255), e.Attempts())
}

func TestOutcome_Helpers(t *testing.T) {
	assert.Len(t, Outcomes, 7)
	for _, o := range Outcomes {
		assert.True(t, o.Valid(), o)
	}
	assert.False(t, Outcome("bogus").Valid())

	assert.True(t, Correct.EndsRound())
	assert.True(t, TooManyGuesses.EndsRound())
	assert.False(t, GreaterThan.EndsRound())
	assert.False(t, NotANumber.EndsRound())
	assert.Equal(t, "above_maximum", AboveMaximum.String())
}
