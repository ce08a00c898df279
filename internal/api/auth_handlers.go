package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerAuthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "startSession",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/session",
		Summary:     "Start session",
		Description: "Creates an anonymous browsing session and returns its bearer token.",
		Tags:        []string{"Auth"},
	}, s.handleStartSession)

	huma.Register(s.api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login",
		Summary:     "Log in",
		Description: "Marks the session as logged in. Starts a fresh session first when no token is presented.",
		Tags:        []string{"Auth"},
	}, s.handleLogin)

	huma.Register(s.api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/register",
		Summary:     "Register",
		Description: "Registers and logs the session in. Starts a fresh session first when no token is presented.",
		Tags:        []string{"Auth"},
	}, s.handleRegister)

	huma.Register(s.api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/logout",
		Summary:     "Log out",
		Tags:        []string{"Auth"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleLogout)
}

// AuthResponse reports the session after an auth operation.
type AuthResponse struct {
	SessionID string `json:"sessionId" doc:"Session ID"`
	Token     string `json:"token,omitempty" doc:"Bearer token, present when a new session was created"`
	LoggedIn  bool   `json:"loggedIn" doc:"Whether the session is logged in"`
}

// AuthOutput wraps an auth response for Huma.
type AuthOutput struct {
	Body AuthResponse
}

func (s *Server) handleStartSession(ctx context.Context, _ *struct{}) (*AuthOutput, error) {
	session, err := s.services.Account.StartSession(ctx)
	if err != nil {
		return nil, err
	}
	return &AuthOutput{Body: AuthResponse{SessionID: session.SessionID, Token: session.Token}}, nil
}

// ensureSession returns the caller's session ID, creating a session when the
// request carried no usable token. The token is empty for existing sessions.
func (s *Server) ensureSession(ctx context.Context) (sessionID, token string, err error) {
	if sessionID, err = GetSessionID(ctx); err == nil {
		return sessionID, "", nil
	}
	created, err := s.services.Account.StartSession(ctx)
	if err != nil {
		return "", "", err
	}
	return created.SessionID, created.Token, nil
}

func (s *Server) handleLogin(ctx context.Context, _ *struct{}) (*AuthOutput, error) {
	sessionID, token, err := s.ensureSession(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.services.Account.Login(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &AuthOutput{Body: AuthResponse{SessionID: session.ID, Token: token, LoggedIn: session.View.LoggedIn}}, nil
}

func (s *Server) handleRegister(ctx context.Context, _ *struct{}) (*AuthOutput, error) {
	sessionID, token, err := s.ensureSession(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.services.Account.Register(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &AuthOutput{Body: AuthResponse{SessionID: session.ID, Token: token, LoggedIn: session.View.LoggedIn}}, nil
}

func (s *Server) handleLogout(ctx context.Context, _ *struct{}) (*AuthOutput, error) {
	sessionID, err := GetSessionID(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.services.Account.Logout(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &AuthOutput{Body: AuthResponse{SessionID: session.ID, LoggedIn: session.View.LoggedIn}}, nil
}
