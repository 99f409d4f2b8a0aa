// Package secrets provides SecretProvider implementations selected by
// configuration: Google Secret Manager for deployments, environment
// variables for local development.
package secrets

import (
	"context"
	"log/slog"

	"enrollsync/config"
	"enrollsync/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerGoogle = "google"
	providerEnv    = "env"
)

// ProviderParams holds dependencies for the SecretProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewProvider creates a SecretProvider based on configuration
func NewProvider(params ProviderParams) (service.SecretProvider, error) {
	cfg := params.Config.Secrets
	logger := params.Logger

	switch cfg.Provider {
	case providerGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("projectId is required for google secret provider")
		}

		provider, err := newGoogleProvider(params.Ctx, cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Google Secret Manager provider")
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return provider.Close()
			},
		})

		logger.Info("Using Google Secret Manager provider",
			slog.String("project_id", cfg.ProjectID),
		)

		return provider, nil

	case providerEnv:
		logger.Warn("Using environment-variable secret provider; not for production use")

		return newEnvProvider(), nil

	default:
		return nil, errors.Errorf("unknown secret provider: %s", cfg.Provider)
	}
}
