package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/writermorphosis/writermorphosis-server/internal/auth"
	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/domain"
	domainerrors "github.com/writermorphosis/writermorphosis-server/internal/errors"
	"github.com/writermorphosis/writermorphosis-server/internal/id"
	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

// AccountService owns sessions and the login/register/logout flow. There
// are no credentials in this system: login and register always succeed and
// only flip the session's authenticated flag. The token binds a client to
// its server-side session.
type AccountService struct {
	store        *store.Store
	tokenService *auth.TokenService
	source       *content.Source
	logger       *slog.Logger
}

// NewAccountService creates an account service.
func NewAccountService(
	st *store.Store,
	tokenService *auth.TokenService,
	source *content.Source,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		store:        st,
		tokenService: tokenService,
		source:       source,
		logger:       logger,
	}
}

// SessionResponse carries the session token issued to the client.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// StartSession creates a fresh session at the initial view state and
// issues its token.
func (s *AccountService) StartSession(ctx context.Context) (*SessionResponse, error) {
	sessionID, err := id.Generate("sess")
	if err != nil {
		return nil, fmt.Errorf("generate session ID: %w", err)
	}

	session := store.NewSession(sessionID, time.Now())
	if err := s.store.Sessions.Create(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.tokenService.GenerateSessionToken(sessionID)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("session started", "session_id", sessionID)
	}
	return &SessionResponse{SessionID: sessionID, Token: token}, nil
}

// ResolveSession verifies a token and returns the live session ID behind
// it. A valid token whose session has been pruned counts as unauthorized;
// the client must start over.
func (s *AccountService) ResolveSession(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.tokenService.VerifySessionToken(tokenString)
	if err != nil {
		return "", err
	}

	session, err := s.store.Sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if stderrors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.Unauthorized("session no longer exists")
		}
		return "", fmt.Errorf("load session: %w", err)
	}

	session.Touch(time.Now())
	if err := s.store.Sessions.Update(ctx, claims.SessionID, session); err != nil {
		// A failed touch is not worth failing the request over.
		if s.logger != nil {
			s.logger.Warn("failed to touch session", "session_id", claims.SessionID, "error", err)
		}
	}
	return claims.SessionID, nil
}

// Login marks the session authenticated and sends its view home. Always
// succeeds for a live session.
func (s *AccountService) Login(ctx context.Context, sessionID string) (*store.Session, error) {
	return s.updateView(ctx, sessionID, func(session *store.Session) {
		session.View.Login()
	})
}

// Register behaves exactly like Login.
func (s *AccountService) Register(ctx context.Context, sessionID string) (*store.Session, error) {
	return s.updateView(ctx, sessionID, func(session *store.Session) {
		session.View.Register()
	})
}

// Logout clears the authenticated flag and sends the view home. The
// session itself stays; only its state changes.
func (s *AccountService) Logout(ctx context.Context, sessionID string) (*store.Session, error) {
	return s.updateView(ctx, sessionID, func(session *store.Session) {
		session.View.Logout()
	})
}

// Profile is the current user as this session sees them: the catalog
// record overlaid with the session's own library counts.
type Profile struct {
	User       domain.User `json:"user"`
	SavedCount int         `json:"saved_count"`
	Following  []string    `json:"following"`
	LoggedIn   bool        `json:"logged_in"`
}

// Me returns the session's view of the current user.
func (s *AccountService) Me(ctx context.Context, sessionID string) (*Profile, error) {
	session, err := s.store.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user := s.source.Catalog().CurrentUser()
	profile := &Profile{
		User:       user,
		SavedCount: len(user.SavedPosts),
		Following:  user.Following,
		LoggedIn:   session.View.LoggedIn,
	}

	library, err := s.store.Libraries.Get(ctx, sessionID)
	if err == nil {
		profile.SavedCount = len(library.SavedPosts)
		profile.Following = library.Following
	} else if !stderrors.Is(err, domainerrors.ErrNotFound) {
		return nil, fmt.Errorf("load library: %w", err)
	}
	return profile, nil
}

func (s *AccountService) updateView(ctx context.Context, sessionID string, apply func(*store.Session)) (*store.Session, error) {
	session, err := s.store.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	apply(session)
	session.Touch(time.Now())
	if err := s.store.Sessions.Update(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}
