// Package quiz implements per-attempt quiz state: answer tracking, the
// advance gate, scoring, and the reviewable breakdown. An attempt is a
// small state machine owned by one session; it never mutates the quiz
// definition it runs against.
package quiz

import (
	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/errors"
)

// State is the attempt lifecycle phase.
type State string

// Attempt states.
const (
	StateSelecting  State = "selecting"
	StateInProgress State = "in_progress"
	StateReviewing  State = "reviewing"
)

// PassThreshold is the score fraction required to pass.
const PassThreshold = 0.70

// Attempt tracks one run through a quiz. The zero value is in Selecting
// with no quiz attached.
type Attempt struct {
	State        State          `json:"state"`
	QuizID       string         `json:"quiz_id,omitempty"`
	CurrentIndex int            `json:"current_index"`
	Answers      map[int]int    `json:"answers,omitempty"` // question index -> chosen option
	quiz         *domain.Quiz
}

// NewAttempt returns an attempt in the Selecting state.
func NewAttempt() *Attempt {
	return &Attempt{State: StateSelecting}
}

// Quiz returns the attached quiz definition, or nil while Selecting.
func (a *Attempt) Quiz() *domain.Quiz { return a.quiz }

// Attach re-binds the quiz definition after the attempt was restored from
// storage. The quiz ID must match the stored one.
func (a *Attempt) Attach(quiz *domain.Quiz) error {
	if a.State != StateSelecting && quiz.ID != a.QuizID {
		return errors.InvalidState("attempt belongs to a different quiz")
	}
	a.quiz = quiz
	return nil
}

// Start begins an attempt at question 0 with a clean answer map. Allowed
// from any state; starting over abandons the previous run.
func (a *Attempt) Start(quiz *domain.Quiz) error {
	if len(quiz.Questions) == 0 {
		return errors.Validation("quiz has no questions")
	}
	a.State = StateInProgress
	a.QuizID = quiz.ID
	a.CurrentIndex = 0
	a.Answers = make(map[int]int, len(quiz.Questions))
	a.quiz = quiz
	return nil
}

// SelectAnswer records the option chosen for the current question,
// overwriting any earlier choice. Changing one's mind is allowed until the
// attempt advances past the question.
func (a *Attempt) SelectAnswer(optionIndex int) error {
	if a.State != StateInProgress {
		return errors.InvalidState("no quiz in progress")
	}
	question := a.quiz.Questions[a.CurrentIndex]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return errors.Validationf("option %d out of range for question %q", optionIndex, question.ID)
	}
	a.Answers[a.CurrentIndex] = optionIndex
	return nil
}

// CanAdvance reports whether the current question has a recorded answer.
// The advance action is blocked until it does.
func (a *Attempt) CanAdvance() bool {
	if a.State != StateInProgress {
		return false
	}
	_, answered := a.Answers[a.CurrentIndex]
	return answered
}

// Advance moves to the next question, or transitions to Reviewing from the
// last one. Rejected while the current question is unanswered.
func (a *Attempt) Advance() error {
	if a.State != StateInProgress {
		return errors.InvalidState("no quiz in progress")
	}
	if !a.CanAdvance() {
		return errors.InvalidState("current question has no answer")
	}
	if a.CurrentIndex < len(a.quiz.Questions)-1 {
		a.CurrentIndex++
		return nil
	}
	a.State = StateReviewing
	return nil
}

// Retake restarts the same quiz from question 0 with answers cleared.
// Only valid while Reviewing.
func (a *Attempt) Retake() error {
	if a.State != StateReviewing {
		return errors.InvalidState("attempt is not in review")
	}
	return a.Start(a.quiz)
}

// Exit abandons the attempt and returns to Selecting.
func (a *Attempt) Exit() {
	*a = Attempt{State: StateSelecting}
}

// QuestionResult is one row of the post-quiz review.
type QuestionResult struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	Selected      int    `json:"selected"` // -1 when unanswered
	CorrectAnswer int    `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	PointsEarned  int    `json:"points_earned"`
	Points        int    `json:"points"`
	Explanation   string `json:"explanation,omitempty"`
}

// Result is the scored outcome of a finished attempt.
type Result struct {
	QuizID      string           `json:"quiz_id"`
	Score       int              `json:"score"`
	TotalPoints int              `json:"total_points"`
	Passed      bool             `json:"passed"`
	Breakdown   []QuestionResult `json:"breakdown"`
}

// Result scores the attempt. Score is the sum of points for questions whose
// recorded answer matches the correct index; unanswered questions count as
// incorrect, never as an error. Only valid while Reviewing.
func (a *Attempt) Result() (*Result, error) {
	if a.State != StateReviewing {
		return nil, errors.InvalidState("attempt is not in review")
	}

	total := a.quiz.SumPoints()
	result := &Result{
		QuizID:      a.quiz.ID,
		TotalPoints: total,
		Breakdown:   make([]QuestionResult, len(a.quiz.Questions)),
	}

	for i, question := range a.quiz.Questions {
		selected, answered := a.Answers[i]
		if !answered {
			selected = -1
		}
		row := QuestionResult{
			QuestionID:    question.ID,
			Question:      question.Question,
			Selected:      selected,
			CorrectAnswer: question.CorrectAnswer,
			Points:        question.Points,
			Explanation:   question.Explanation,
		}
		if answered && selected == question.CorrectAnswer {
			row.Correct = true
			row.PointsEarned = question.Points
			result.Score += question.Points
		}
		result.Breakdown[i] = row
	}

	if total > 0 {
		result.Passed = float64(result.Score)/float64(total) >= PassThreshold
	}
	return result, nil
}
