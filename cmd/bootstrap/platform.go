package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"aparthotel-booking/internal/infra/db"
	"aparthotel-booking/internal/pkg/config"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/pkg/jwt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config", fx.Provide(config.LoadConfig))

var DBModule = fx.Module("db", fx.Provide(NewDB))

var JWTModule = fx.Module("jwt", fx.Provide(NewJWTService))

// NewDB opens the pool eagerly so a bad DSN stops startup instead of the first booking.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", cfg.DB.MaxConns)

	lc.Append(fx.StopHook(func(context.Context) { cleanup() }))
	return pool, nil
}

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "JWT_ACCESS_TOKEN_DURATION")
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "JWT_REFRESH_TOKEN_DURATION")
	}
	if refresh <= access {
		return nil, errs.New("refresh token must outlive the access token")
	}
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
