package bootstrap

import (
	"time"

	"party-rental/internal/pkg/config"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "parse JWT access token duration")
	}
	if len(cfg.JWT.Secret) < 16 {
		return nil, errs.New("JWT secret must be at least 16 characters")
	}

	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration), nil
}
