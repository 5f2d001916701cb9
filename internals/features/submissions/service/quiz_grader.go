package service

import (
	"errors"
	"math"

	taskModel "campuscash_backend/internals/features/tasks/model"
)

// ErrInvalidAnswerCount is returned when the submitted answer list does not
// line up one-to-one with the quiz questions. No submission row may be
// written in that case.
var ErrInvalidAnswerCount = errors.New("answer count does not match question count")

// GradeQuiz grades an ordered answer list against the quiz definition.
// Pure: persistence is entirely the caller's concern.
func GradeQuiz(questions []taskModel.QuizQuestion, answers []int, passingScore int) (score int, passed bool, err error) {
	if len(answers) != len(questions) {
		return 0, false, ErrInvalidAnswerCount
	}
	if len(questions) == 0 {
		return 0, false, ErrInvalidAnswerCount
	}
	if passingScore <= 0 {
		passingScore = taskModel.DefaultPassingScore
	}

	correct := 0
	for i, q := range questions {
		if answers[i] == q.CorrectIndex {
			correct++
		}
	}

	score = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	passed = score >= passingScore
	return score, passed, nil
}
