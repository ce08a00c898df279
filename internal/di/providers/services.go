package providers

import (
	"github.com/samber/do/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/auth"
	"github.com/writermorphosis/writermorphosis-server/internal/config"
	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/history"
	"github.com/writermorphosis/writermorphosis-server/internal/logger"
	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

// ProvideContentService provides the catalog read service.
func ProvideContentService(i do.Injector) (*service.ContentService, error) {
	source := do.MustInvoke[*content.Source](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewContentService(source, log.Logger), nil
}

// ProvideAccountService provides the session and profile service.
func ProvideAccountService(i do.Injector) (*service.AccountService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	source := do.MustInvoke[*content.Source](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAccountService(storeHandle.Store, tokenService, source, log.Logger), nil
}

// ProvideLibraryService provides the saved posts, likes, reading history,
// and notification service.
func ProvideLibraryService(i do.Injector) (*service.LibraryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	source := do.MustInvoke[*content.Source](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewLibraryService(storeHandle.Store, source, log.Logger), nil
}

// ProvideViewService provides the navigation state service.
func ProvideViewService(i do.Injector) (*service.ViewService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	contents := do.MustInvoke[*service.ContentService](i)
	library := do.MustInvoke[*service.LibraryService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewViewService(storeHandle.Store, contents, library, log.Logger), nil
}

// ProvideQuizService provides the quiz attempt service.
func ProvideQuizService(i do.Injector) (*service.QuizService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	source := do.MustInvoke[*content.Source](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewQuizService(storeHandle.Store, source, log.Logger), nil
}

// ProvideHistoryService provides the day-in-history service backed by the
// Wikimedia feed API.
func ProvideHistoryService(i do.Injector) (*service.HistoryService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	var client *history.Client
	if cfg.History.BaseURL != "" {
		client = history.NewClientWithBaseURL(cfg.History.BaseURL, log.Logger)
	} else {
		client = history.NewClient(log.Logger)
	}

	return service.NewHistoryService(history.NewService(client, log.Logger), log.Logger), nil
}

// SearchServiceHandle wraps the search service so the bleve index closes
// on shutdown.
type SearchServiceHandle struct {
	*service.SearchService
}

// Shutdown implements do.Shutdownable.
func (h *SearchServiceHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchService provides the post search service.
func ProvideSearchService(i do.Injector) (*SearchServiceHandle, error) {
	source := do.MustInvoke[*content.Source](i)
	log := do.MustInvoke[*logger.Logger](i)

	return &SearchServiceHandle{SearchService: service.NewSearchService(source, log.Logger)}, nil
}
