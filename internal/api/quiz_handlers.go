package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

func (s *Server) registerQuizRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listQuizzes",
		Method:      http.MethodGet,
		Path:        "/api/v1/quizzes",
		Summary:     "List quizzes",
		Tags:        []string{"Quizzes"},
	}, s.handleListQuizzes)

	huma.Register(s.api, huma.Operation{
		OperationID: "startQuizAttempt",
		Method:      http.MethodPost,
		Path:        "/api/v1/quizzes/{id}/attempt",
		Summary:     "Start attempt",
		Description: "Starts a new attempt at the quiz, replacing any attempt in progress.",
		Tags:        []string{"Quizzes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleStartAttempt)

	huma.Register(s.api, huma.Operation{
		OperationID: "getQuizAttempt",
		Method:      http.MethodGet,
		Path:        "/api/v1/attempt",
		Summary:     "Current attempt",
		Tags:        []string{"Quizzes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCurrentAttempt)

	huma.Register(s.api, huma.Operation{
		OperationID: "answerQuizQuestion",
		Method:      http.MethodPost,
		Path:        "/api/v1/attempt/answer",
		Summary:     "Select answer",
		Description: "Selects an option for the current question. Re-selecting overwrites the previous choice.",
		Tags:        []string{"Quizzes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAnswer)

	huma.Register(s.api, huma.Operation{
		OperationID: "advanceQuizAttempt",
		Method:      http.MethodPost,
		Path:        "/api/v1/attempt/advance",
		Summary:     "Advance attempt",
		Description: "Moves to the next question, or into review after the last one. Requires an answer for the current question.",
		Tags:        []string{"Quizzes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAdvance)

	huma.Register(s.api, huma.Operation{
		OperationID: "retakeQuiz",
		Method:      http.MethodPost,
		Path:        "/api/v1/attempt/retake",
		Summary:     "Retake quiz",
		Description: "Restarts the reviewed quiz with all answers cleared.",
		Tags:        []string{"Quizzes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleRetake)

	huma.Register(s.api, huma.Operation{
		OperationID: "exitQuizAttempt",
		Method:      http.MethodDelete,
		Path:        "/api/v1/attempt",
		Summary:     "Exit attempt",
		Description: "Abandons the attempt and returns to quiz selection.",
		Tags:        []string{"Quizzes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleExitAttempt)
}

// QuizzesResponse contains all quiz definitions.
type QuizzesResponse struct {
	Quizzes []domain.Quiz `json:"quizzes" doc:"Quizzes"`
}

// QuizzesOutput wraps the quiz list for Huma.
type QuizzesOutput struct {
	Body QuizzesResponse
}

// StartAttemptInput identifies the quiz to attempt.
type StartAttemptInput struct {
	ID string `path:"id" doc:"Quiz ID"`
}

// AttemptOutput wraps an attempt view for Huma.
type AttemptOutput struct {
	Body *service.AttemptView
}

// AnswerInput carries a selected option.
type AnswerInput struct {
	Body struct {
		Option int `json:"option" minimum:"0" doc:"Zero-based option index"`
	}
}

func (s *Server) handleListQuizzes(_ context.Context, _ *struct{}) (*QuizzesOutput, error) {
	return &QuizzesOutput{Body: QuizzesResponse{Quizzes: s.services.Quiz.Quizzes()}}, nil
}

func (s *Server) handleStartAttempt(ctx context.Context, input *StartAttemptInput) (*AttemptOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.services.Quiz.Start(ctx, sessionID, input.ID)
	if err != nil {
		return nil, err
	}
	return &AttemptOutput{Body: view}, nil
}

func (s *Server) handleCurrentAttempt(ctx context.Context, _ *struct{}) (*AttemptOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.services.Quiz.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &AttemptOutput{Body: view}, nil
}

func (s *Server) handleAnswer(ctx context.Context, input *AnswerInput) (*AttemptOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.services.Quiz.Answer(ctx, sessionID, input.Body.Option)
	if err != nil {
		return nil, err
	}
	return &AttemptOutput{Body: view}, nil
}

func (s *Server) handleAdvance(ctx context.Context, _ *struct{}) (*AttemptOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.services.Quiz.Advance(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &AttemptOutput{Body: view}, nil
}

func (s *Server) handleRetake(ctx context.Context, _ *struct{}) (*AttemptOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.services.Quiz.Retake(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &AttemptOutput{Body: view}, nil
}

func (s *Server) handleExitAttempt(ctx context.Context, _ *struct{}) (*AttemptOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.services.Quiz.Exit(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &AttemptOutput{Body: view}, nil
}
