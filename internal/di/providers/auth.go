package providers

import (
	"github.com/samber/do/v2"

	"github.com/writermorphosis/writermorphosis-server/internal/auth"
	"github.com/writermorphosis/writermorphosis-server/internal/config"
	"github.com/writermorphosis/writermorphosis-server/internal/logger"
)

// AuthKey is the hex-encoded session token key.
type AuthKey string

// ProvideAuthKey loads or generates the session token key.
func ProvideAuthKey(i do.Injector) (AuthKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	key, err := auth.LoadOrGenerateKey(cfg.Data.BasePath)
	if err != nil {
		return "", err
	}

	cfg.Auth.SessionTokenKey = key

	log.Info("Session token key loaded",
		"session_token_duration", cfg.Auth.SessionTokenDuration,
	)

	return AuthKey(key), nil
}

// ProvideTokenService provides the PASETO token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	authKey := do.MustInvoke[AuthKey](i)

	return auth.NewTokenService(string(authKey), cfg.Auth.SessionTokenDuration)
}
