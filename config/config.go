// Package config loads and validates the service configuration from YAML
// files with environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath       = "."
	defaultLMSTimeout = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// LMS holds the remote learning-management API connection settings.
	LMS *LMSConfig `json:"lms" yaml:"lms" validate:"required"`

	// Secrets configures where API credentials are fetched from.
	Secrets *SecretsConfig `json:"secrets" yaml:"secrets" validate:"required"`

	// Projects lists the data-capture projects with the integration enabled,
	// with their field mappings resolved once at load time.
	Projects []*ProjectConfig `json:"projects" yaml:"projects" validate:"dive"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LMSConfig defines the remote LMS API connection settings.
type LMSConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SecretsConfig defines the secret-provider backend and the names of the
// four credential secrets.
type SecretsConfig struct {
	// Provider type: "google" for Google Secret Manager or "env" for
	// environment variables (local development only).
	Provider string `json:"provider" yaml:"provider" validate:"required,oneof=google env"`

	// Google Cloud project ID (for google provider).
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Optional service-account credentials file (for google provider).
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	Names SecretNames `json:"names" yaml:"names"`
}

// SecretNames maps each credential to the secret name holding it.
type SecretNames struct {
	ClientID     string `json:"clientId" yaml:"clientId" validate:"required"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret" validate:"required"`
	Username     string `json:"username" yaml:"username" validate:"required"`
	Password     string `json:"password" yaml:"password" validate:"required"`
}

// SubjectFields maps the five subject attributes to concrete record fields.
type SubjectFields struct {
	Email     string `json:"email" yaml:"email" validate:"required"`
	FirstName string `json:"firstName" yaml:"firstName" validate:"required"`
	LastName  string `json:"lastName" yaml:"lastName" validate:"required"`
	SID       string `json:"sid" yaml:"sid"`
	Affiliate string `json:"affiliate" yaml:"affiliate"`
}

// WriteBackConfig names the repeating-form fields that receive enrollment
// state. An empty field name means that value is not written back; the
// course-id field is mandatory because instance matching keys on it.
type WriteBackConfig struct {
	Form            string `json:"form" yaml:"form" validate:"required"`
	EventID         int64  `json:"eventId" yaml:"eventId"`
	CourseIDField   string `json:"courseIdField" yaml:"courseIdField" validate:"required"`
	StatusField     string `json:"statusField" yaml:"statusField"`
	CourseCodeField string `json:"courseCodeField" yaml:"courseCodeField"`
	CourseNameField string `json:"courseNameField" yaml:"courseNameField"`
	UserIDField     string `json:"userIdField" yaml:"userIdField"`
}

// ProjectConfig holds the per-project integration settings. All field-name
// mappings are validated up front so the workflow never re-reads raw
// configuration at call time.
type ProjectConfig struct {
	ProjectID int64 `json:"projectId" yaml:"projectId" validate:"required"`
	Enabled   bool  `json:"enabled" yaml:"enabled"`

	// EventID of the arm holding the trigger form's fields.
	EventID int64 `json:"eventId" yaml:"eventId"`

	// TriggerForm is the instrument whose completion starts a sync.
	TriggerForm string `json:"triggerForm" yaml:"triggerForm" validate:"required"`

	// RequestTypeField gates processing: a record is synced only when this
	// field equals RequestTypeValue.
	RequestTypeField string `json:"requestTypeField" yaml:"requestTypeField" validate:"required"`
	RequestTypeValue string `json:"requestTypeValue" yaml:"requestTypeValue" validate:"required"`

	// OnBehalfField selects between the requester and trainee mappings.
	OnBehalfField string `json:"onBehalfField" yaml:"onBehalfField" validate:"required"`

	Requester SubjectFields  `json:"requester" yaml:"requester" validate:"required"`
	Trainee   *SubjectFields `json:"trainee" yaml:"trainee"`

	// RoleField holds the learning-plan identifier directly.
	RoleField string `json:"roleField" yaml:"roleField" validate:"required"`

	WriteBack WriteBackConfig `json:"writeBack" yaml:"writeBack" validate:"required"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: LMS_BASEURL -> lms.baseUrl (not lms.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.LMS != nil && cfg.LMS.Timeout <= 0 {
		cfg.LMS.Timeout = defaultLMSTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the whole configuration, field mappings included, so the
// workflow only ever sees resolved and verified field names.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "config validation failed")
	}

	seen := make(map[int64]struct{}, len(cfg.Projects))
	for _, project := range cfg.Projects {
		if _, dup := seen[project.ProjectID]; dup {
			return errors.Errorf("duplicate project configuration for project %d", project.ProjectID)
		}
		seen[project.ProjectID] = struct{}{}
	}

	return nil
}

// Project returns the configuration for the given project ID, or nil when
// the project has no integration settings.
func (cfg *Config) Project(projectID int64) *ProjectConfig {
	for _, project := range cfg.Projects {
		if project.ProjectID == projectID {
			return project
		}
	}

	return nil
}

// Subject returns the field mapping selected by the "on behalf" flag. The
// trainee mapping falls back to the requester mapping when not configured.
func (project *ProjectConfig) Subject(onBehalf bool) SubjectFields {
	if onBehalf && project.Trainee != nil {
		return *project.Trainee
	}

	return project.Requester
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
