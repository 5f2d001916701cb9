package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskModel "campuscash_backend/internals/features/tasks/model"
)

func threeQuestions() []taskModel.QuizQuestion {
	return []taskModel.QuizQuestion{
		{Text: "Q1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{Text: "Q2", Options: []string{"a", "b"}, CorrectIndex: 1},
		{Text: "Q3", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
	}
}

func TestGradeQuizAllCorrect(t *testing.T) {
	score, passed, err := GradeQuiz(threeQuestions(), []int{0, 1, 2}, 70)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
	assert.True(t, passed)
}

func TestGradeQuizTwoOfThreeFailsAtSeventy(t *testing.T) {
	score, passed, err := GradeQuiz(threeQuestions(), []int{0, 1, 3}, 70)
	require.NoError(t, err)
	assert.Equal(t, 67, score)
	assert.False(t, passed)
}

func TestGradeQuizAnswerCountMismatch(t *testing.T) {
	_, _, err := GradeQuiz(threeQuestions(), []int{0, 1}, 70)
	require.ErrorIs(t, err, ErrInvalidAnswerCount)

	_, _, err = GradeQuiz(threeQuestions(), []int{0, 1, 2, 0}, 70)
	require.ErrorIs(t, err, ErrInvalidAnswerCount)

	_, _, err = GradeQuiz(nil, nil, 70)
	require.ErrorIs(t, err, ErrInvalidAnswerCount)
}

func TestGradeQuizDefaultPassingScore(t *testing.T) {
	// passingScore <= 0 falls back to 70.
	score, passed, err := GradeQuiz(threeQuestions(), []int{0, 1, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, 67, score)
	assert.False(t, passed)

	score, passed, err = GradeQuiz(threeQuestions(), []int{0, 1, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
	assert.True(t, passed)
}

func TestGradeQuizCustomThreshold(t *testing.T) {
	score, passed, err := GradeQuiz(threeQuestions(), []int{0, 1, 3}, 60)
	require.NoError(t, err)
	assert.Equal(t, 67, score)
	assert.True(t, passed)
}
