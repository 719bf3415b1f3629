package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"rummy/internal/config"
)

// InitModule loads the game configuration and registers the RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	path := DefaultGameConfigPath
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok && env[GameConfigEnvKey] != "" {
		path = env[GameConfigEnvKey]
	}
	if err := config.LoadGameConfig(path); err != nil {
		logger.Warn("Using default game config: %v", err)
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Rummy Go module loaded.")
	return nil
}
