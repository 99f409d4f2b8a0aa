package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{
		LMS: &LMSConfig{
			BaseURL: "https://lms.example.edu",
			Timeout: 30 * time.Second,
		},
		Secrets: &SecretsConfig{
			Provider: "env",
			Names: SecretNames{
				ClientID:     "lms-client-id",
				ClientSecret: "lms-client-secret",
				Username:     "lms-username",
				Password:     "lms-password",
			},
		},
		Projects: []*ProjectConfig{
			{
				ProjectID:        101,
				Enabled:          true,
				TriggerForm:      "training_request",
				RequestTypeField: "request_type",
				RequestTypeValue: "user_training",
				OnBehalfField:    "on_behalf",
				Requester: SubjectFields{
					Email:     "req_email",
					FirstName: "req_first",
					LastName:  "req_last",
				},
				RoleField: "primary_role",
				WriteBack: WriteBackConfig{
					Form:          "lms_enrollment",
					CourseIDField: "lms_course_id",
				},
			},
		},
	}

	return cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_MissingLMS(t *testing.T) {
	cfg := validConfig()
	cfg.LMS = nil

	assert.Error(t, cfg.Validate())
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.LMS.BaseURL = "not-a-url"

	assert.Error(t, cfg.Validate())
}

func TestValidate_UnknownSecretsProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Secrets.Provider = "vault"

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingSecretName(t *testing.T) {
	cfg := validConfig()
	cfg.Secrets.Names.Password = ""

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingCourseIDField(t *testing.T) {
	cfg := validConfig()
	cfg.Projects[0].WriteBack.CourseIDField = ""

	assert.Error(t, cfg.Validate())
}

func TestValidate_OptionalWriteBackFieldsMayBeEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Projects[0].WriteBack.StatusField = ""
	cfg.Projects[0].WriteBack.CourseCodeField = ""
	cfg.Projects[0].WriteBack.CourseNameField = ""
	cfg.Projects[0].WriteBack.UserIDField = ""

	assert.NoError(t, cfg.Validate())
}

func TestValidate_DuplicateProjectID(t *testing.T) {
	cfg := validConfig()
	dup := *cfg.Projects[0]
	cfg.Projects = append(cfg.Projects, &dup)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate project")
}

func TestProject_Lookup(t *testing.T) {
	cfg := validConfig()

	assert.NotNil(t, cfg.Project(101))
	assert.Nil(t, cfg.Project(999))
}

func TestSubject_TraineeFallsBackToRequester(t *testing.T) {
	project := validConfig().Projects[0]

	// No trainee mapping configured: both flag states resolve the requester.
	assert.Equal(t, project.Requester, project.Subject(false))
	assert.Equal(t, project.Requester, project.Subject(true))

	project.Trainee = &SubjectFields{
		Email:     "trainee_email",
		FirstName: "trainee_first",
		LastName:  "trainee_last",
	}
	assert.Equal(t, *project.Trainee, project.Subject(true))
	assert.Equal(t, project.Requester, project.Subject(false))
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	configYAML := `
env:
  env: test
  serviceName: enrollsync
lms:
  baseUrl: https://lms.example.edu
  timeout: 45s
secrets:
  provider: env
  names:
    clientId: lms-client-id
    clientSecret: lms-client-secret
    username: lms-username
    password: lms-password
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configYAML), 0o600))

	t.Setenv("LMS_BASEURL", "https://override.example.edu")

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("config", rel)
	require.NoError(t, err)

	assert.Equal(t, "enrollsync", cfg.Env.ServiceName)
	assert.Equal(t, "https://override.example.edu", cfg.LMS.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.LMS.Timeout)
	assert.Equal(t, "env", cfg.Secrets.Provider)
	assert.Equal(t, "lms-password", cfg.Secrets.Names.Password)
}
