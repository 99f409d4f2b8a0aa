package secrets

import (
	"context"
	"fmt"

	"enrollsync/config"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// googleProvider reads secrets from Google Secret Manager, always resolving
// the latest enabled version.
type googleProvider struct {
	client    *secretmanager.Client
	projectID string
}

func newGoogleProvider(ctx context.Context, cfg *config.SecretsConfig) (*googleProvider, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Secret Manager client")
	}

	return &googleProvider{
		client:    client,
		projectID: cfg.ProjectID,
	}, nil
}

// GetSecret returns the latest version of the named secret.
func (p *googleProvider) GetSecret(ctx context.Context, name string) (string, error) {
	result, err := p.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", p.projectID, name),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to access secret %s", name)
	}

	return string(result.GetPayload().GetData()), nil
}

// Close releases the underlying gRPC connection.
func (p *googleProvider) Close() error {
	return p.client.Close()
}
