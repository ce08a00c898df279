package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	domainerrors "github.com/writermorphosis/writermorphosis-server/internal/errors"
	"github.com/writermorphosis/writermorphosis-server/internal/quiz"
	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

// QuizService runs the per-session attempt lifecycle. The attempt state
// machine lives in the quiz package; this service persists it between
// requests and re-binds the quiz definition from the catalog on load.
type QuizService struct {
	store  *store.Store
	source *content.Source
	logger *slog.Logger
}

// NewQuizService creates a quiz service.
func NewQuizService(st *store.Store, source *content.Source, logger *slog.Logger) *QuizService {
	return &QuizService{store: st, source: source, logger: logger}
}

// AttemptView is the attempt as the client sees it: lifecycle state, the
// active question, and the scored result once the attempt is in review.
type AttemptView struct {
	State           quiz.State           `json:"state"`
	Quiz            *domain.Quiz         `json:"quiz,omitempty"`
	CurrentIndex    int                  `json:"current_index"`
	CurrentQuestion *domain.QuizQuestion `json:"current_question,omitempty"`
	SelectedOption  *int                 `json:"selected_option,omitempty"`
	CanAdvance      bool                 `json:"can_advance"`
	Result          *quiz.Result         `json:"result,omitempty"`
}

// Quizzes lists the quiz definitions available for selection.
func (s *QuizService) Quizzes() []domain.Quiz {
	return s.source.Catalog().Quizzes()
}

// Start begins an attempt at the given quiz, abandoning any previous run.
func (s *QuizService) Start(ctx context.Context, sessionID, quizID string) (*AttemptView, error) {
	definition := s.source.Catalog().QuizByID(quizID)
	if definition == nil {
		return nil, domainerrors.NotFoundf("quiz %q not found", quizID)
	}

	attempt := quiz.NewAttempt()
	if err := attempt.Start(definition); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sessionID, attempt); err != nil {
		return nil, err
	}
	return s.view(attempt)
}

// Current returns the session's attempt. A session that never started one
// gets a view in the selecting state.
func (s *QuizService) Current(ctx context.Context, sessionID string) (*AttemptView, error) {
	attempt, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(attempt)
}

// Answer records the chosen option for the current question. Re-answering
// before advancing overwrites the earlier choice.
func (s *QuizService) Answer(ctx context.Context, sessionID string, option int) (*AttemptView, error) {
	return s.apply(ctx, sessionID, func(attempt *quiz.Attempt) error {
		return attempt.SelectAnswer(option)
	})
}

// Advance moves to the next question, or into review from the last one.
func (s *QuizService) Advance(ctx context.Context, sessionID string) (*AttemptView, error) {
	return s.apply(ctx, sessionID, func(attempt *quiz.Attempt) error {
		return attempt.Advance()
	})
}

// Retake restarts the reviewed quiz from question 0.
func (s *QuizService) Retake(ctx context.Context, sessionID string) (*AttemptView, error) {
	return s.apply(ctx, sessionID, func(attempt *quiz.Attempt) error {
		return attempt.Retake()
	})
}

// Exit abandons the attempt and returns to selection.
func (s *QuizService) Exit(ctx context.Context, sessionID string) (*AttemptView, error) {
	return s.apply(ctx, sessionID, func(attempt *quiz.Attempt) error {
		attempt.Exit()
		return nil
	})
}

func (s *QuizService) apply(ctx context.Context, sessionID string, op func(*quiz.Attempt) error) (*AttemptView, error) {
	attempt, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(attempt); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sessionID, attempt); err != nil {
		return nil, err
	}
	return s.view(attempt)
}

// load restores the session's attempt and re-binds its quiz definition.
// A stored attempt whose quiz vanished in a catalog reload resets to
// selecting rather than erroring forever.
func (s *QuizService) load(ctx context.Context, sessionID string) (*quiz.Attempt, error) {
	record, err := s.store.Attempts.Get(ctx, sessionID)
	if stderrors.Is(err, domainerrors.ErrNotFound) {
		return quiz.NewAttempt(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load attempt: %w", err)
	}

	attempt := record.Attempt
	if attempt.State == quiz.StateSelecting {
		return attempt, nil
	}

	definition := s.source.Catalog().QuizByID(attempt.QuizID)
	if definition == nil {
		if s.logger != nil {
			s.logger.Warn("attempt references missing quiz, resetting", "session_id", sessionID, "quiz_id", attempt.QuizID)
		}
		attempt.Exit()
		return attempt, nil
	}
	if err := attempt.Attach(definition); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *QuizService) save(ctx context.Context, sessionID string, attempt *quiz.Attempt) error {
	record := &store.AttemptRecord{
		SessionID: sessionID,
		Attempt:   attempt,
		UpdatedAt: time.Now(),
	}
	if err := s.store.Attempts.Upsert(ctx, sessionID, record); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (s *QuizService) view(attempt *quiz.Attempt) (*AttemptView, error) {
	view := &AttemptView{
		State:        attempt.State,
		Quiz:         attempt.Quiz(),
		CurrentIndex: attempt.CurrentIndex,
		CanAdvance:   attempt.CanAdvance(),
	}

	if attempt.State == quiz.StateInProgress {
		question := attempt.Quiz().Questions[attempt.CurrentIndex]
		view.CurrentQuestion = &question
		if selected, ok := attempt.Answers[attempt.CurrentIndex]; ok {
			view.SelectedOption = &selected
		}
	}

	if attempt.State == quiz.StateReviewing {
		result, err := attempt.Result()
		if err != nil {
			return nil, err
		}
		view.Result = result
	}
	return view, nil
}
