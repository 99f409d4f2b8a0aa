package secrets

import (
	"context"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// envProvider resolves secrets from environment variables for local
// development. A secret name maps to its upper-snake-case form, so
// "lms-client-id" reads LMS_CLIENT_ID.
type envProvider struct{}

func newEnvProvider() *envProvider {
	return &envProvider{}
}

// GetSecret returns the environment variable matching the secret name.
func (p *envProvider) GetSecret(_ context.Context, name string) (string, error) {
	key := envKey(name)

	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", errors.Errorf("secret %s not found in environment (%s)", name, key)
	}

	return value, nil
}

func envKey(name string) string {
	var key strings.Builder
	key.Grow(len(name))

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			key.WriteRune(unicode.ToUpper(r))
		} else {
			key.WriteRune('_')
		}
	}

	return key.String()
}
