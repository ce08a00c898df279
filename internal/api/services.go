package api

import (
	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Account *service.AccountService
	Content *service.ContentService
	View    *service.ViewService
	Quiz    *service.QuizService
	Library *service.LibraryService
	History *service.HistoryService
	Search  *service.SearchService
}
