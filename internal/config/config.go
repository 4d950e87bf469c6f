package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/session"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. MOCKVIEW_QUESTIONS.
	EnvPrefix = "MOCKVIEW"

	// FileName is the config file looked up in the working directory when
	// no explicit path is given (mockview.yaml, mockview.json, ...).
	FileName = "mockview"

	// MaxQuestions bounds the question count of a single interview.
	MaxQuestions = 50
)

// Config holds the user-tunable settings shared by all commands.
type Config struct {
	// Questions is the number of questions to select.
	Questions int `mapstructure:"questions" validate:"min=1,max=50"`

	// FollowUps enables follow-up prompts after each main answer.
	FollowUps bool `mapstructure:"follow-ups"`

	// Difficulty filters questions: easy, medium, hard or mixed.
	Difficulty string `mapstructure:"difficulty" validate:"oneof=easy medium hard mixed"`

	// Seed makes question selection and scoring reproducible.
	// Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`

	// Catalog is an optional path to a YAML or JSON question catalog.
	// Empty selects the built-in catalog.
	Catalog string `mapstructure:"catalog"`

	// LogFile receives log output while the full-screen UI runs.
	// Empty disables logging there.
	LogFile string `mapstructure:"log-file"`

	Debug bool `mapstructure:"debug"`
	JSON  bool `mapstructure:"json"`
}

// DefaultConfig returns a Config with the default interview settings.
func DefaultConfig() Config {
	s := session.DefaultSettings()
	return Config{
		Questions:  s.NumberOfQuestions,
		FollowUps:  s.IncludeFollowUps,
		Difficulty: string(s.Difficulty),
	}
}

// SetDefaults registers the defaults on v. Every key needs a default so
// that environment overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("questions", d.Questions)
	v.SetDefault("follow-ups", d.FollowUps)
	v.SetDefault("difficulty", d.Difficulty)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("log-file", d.LogFile)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("json", d.JSON)
}

// Load resolves the configuration from, in increasing priority: defaults,
// the config file, MOCKVIEW_* environment variables and any flags already
// bound on v. An explicit path must exist; the default mockview.* file in
// the working directory is optional.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their config key rather than the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	if c.Difficulty == "" {
		c.Difficulty = string(catalog.DifficultyMixed)
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, formatFieldError(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag())
	}
}

// Settings converts the interview part of the config into session settings.
func (c Config) Settings() (session.Settings, error) {
	d, err := catalog.ParseDifficulty(c.Difficulty)
	if err != nil {
		return session.Settings{}, err
	}
	s := session.Settings{
		NumberOfQuestions: c.Questions,
		IncludeFollowUps:  c.FollowUps,
		Difficulty:        d,
	}
	if err := s.Validate(); err != nil {
		return session.Settings{}, err
	}
	return s, nil
}
