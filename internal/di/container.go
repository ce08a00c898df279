// Package di provides dependency injection configuration for the
// WriterMorphosis server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/auth"
	"github.com/writermorphosis/writermorphosis-server/internal/backup"
	"github.com/writermorphosis/writermorphosis-server/internal/config"
	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/di/providers"
	"github.com/writermorphosis/writermorphosis-server/internal/logger"
	"github.com/writermorphosis/writermorphosis-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideBackupService)

	// Content layer
	do.Provide(injector, providers.ProvideContentSource)
	do.Provide(injector, providers.ProvideCatalogWatcher)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Business services
	do.Provide(injector, providers.ProvideContentService)
	do.Provide(injector, providers.ProvideAccountService)
	do.Provide(injector, providers.ProvideLibraryService)
	do.Provide(injector, providers.ProvideViewService)
	do.Provide(injector, providers.ProvideQuizService)
	do.Provide(injector, providers.ProvideHistoryService)
	do.Provide(injector, providers.ProvideSearchService)

	// Workers
	do.Provide(injector, providers.ProvideSessionCleanupJob)
	do.Provide(injector, providers.ProvideBackupJob)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*backup.Service](injector)
	_ = do.MustInvoke[*content.Source](injector)
	_ = do.MustInvoke[*providers.CatalogWatcherHandle](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)

	// Business services
	_ = do.MustInvoke[*service.ContentService](injector)
	_ = do.MustInvoke[*service.AccountService](injector)
	_ = do.MustInvoke[*service.LibraryService](injector)
	_ = do.MustInvoke[*service.ViewService](injector)
	_ = do.MustInvoke[*service.QuizService](injector)
	_ = do.MustInvoke[*service.HistoryService](injector)
	_ = do.MustInvoke[*providers.SearchServiceHandle](injector)

	// Workers
	_ = do.MustInvoke[*providers.SessionCleanupJob](injector)
	_ = do.MustInvoke[*providers.BackupJob](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
