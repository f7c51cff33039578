package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Classifier backends selectable through CLASSIFIER_BACKEND.
const (
	BackendHugot  = "hugot"
	BackendVader  = "vader"
	BackendOpenAI = "openai"
)

// ErrStartupConfig marks configuration problems that must stop the process.
var ErrStartupConfig = errors.New("startup configuration error")

// StartupConfigError is returned by Load when the process cannot start.
type StartupConfigError struct {
	Reason string
	Err    error
}

func (e *StartupConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *StartupConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrStartupConfig, e.Err}
	}
	return []error{ErrStartupConfig}
}

type Config struct {
	Server     ServerConfig
	Twitter    TwitterConfig
	Classifier ClassifierConfig
	OpenAI     OpenAIConfig
	LogLevel   slog.Level `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"SERVER_PORT" default:"5001"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type TwitterConfig struct {
	BearerToken string        `envconfig:"TWITTER_BEARER_TOKEN" required:"true"`
	APIURL      string        `envconfig:"TWITTER_API_URL" default:"https://api.twitter.com"`
	Timeout     time.Duration `envconfig:"TWITTER_TIMEOUT" default:"30s"`
}

type ClassifierConfig struct {
	Backend   string `envconfig:"CLASSIFIER_BACKEND" default:"hugot"`
	ModelPath string `envconfig:"MODEL_PATH" default:"model/sentiment_analysis_model"`

	// OnnxLibraryPath points at libonnxruntime.so. Empty leaves hugot's default.
	OnnxLibraryPath string `envconfig:"ONNX_LIBRARY_PATH"`

	// ModelLabels maps raw model output labels onto Positive/Negative/Neutral,
	// e.g. MODEL_LABELS="LABEL_0:Negative,LABEL_1:Neutral,LABEL_2:Positive".
	ModelLabels map[string]string `envconfig:"MODEL_LABELS"`
}

type OpenAIConfig struct {
	APIKey      string        `envconfig:"OPENAI_API_KEY"`
	APIEndpoint string        `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model       string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout     time.Duration `envconfig:"OPENAI_TIMEOUT" default:"60s"`
}

// Load processes the environment into a Config and checks everything the
// process needs before it can serve: the API token and the classifier artifact.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &StartupConfigError{Reason: "invalid environment", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("[Config] configuration loaded successfully",
		slog.String("classifier", cfg.Classifier.Backend),
		slog.String("addr", cfg.Server.Addr()))
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Twitter.BearerToken == "" {
		return &StartupConfigError{Reason: "missing bearer token in environment variables (TWITTER_BEARER_TOKEN)"}
	}

	switch c.Classifier.Backend {
	case BackendHugot:
		if _, err := os.Stat(c.Classifier.ModelPath); err != nil {
			return &StartupConfigError{
				Reason: fmt.Sprintf("model file not found at %s", c.Classifier.ModelPath),
				Err:    err,
			}
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return &StartupConfigError{Reason: "OPENAI_API_KEY is required for the openai classifier"}
		}
	case BackendVader:
	default:
		return &StartupConfigError{Reason: fmt.Sprintf("unknown classifier backend %q", c.Classifier.Backend)}
	}

	return nil
}
