package cmd

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/mockview/internal/catalog"
	"github.com/abhisek/mockview/internal/config"
	"github.com/abhisek/mockview/internal/feedback"
	"github.com/abhisek/mockview/internal/logger"
	"github.com/abhisek/mockview/internal/random"
	"github.com/abhisek/mockview/internal/session"
)

// cli carries state shared by all commands of one tree.
type cli struct {
	v       *viper.Viper
	cfgFile string
}

// deps are the services a command runs with, built once per invocation.
type deps struct {
	cfg      config.Config
	settings session.Settings
	catalog  *catalog.Catalog
	logger   *zap.Logger
	rand     random.Source
}

// load resolves the config, the catalog, the logger and the random source.
// The full-screen UI must not log to stderr, so with tui set logs go only to
// the configured log file.
func (c *cli) load(tui bool) (*deps, error) {
	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return nil, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, tui)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	var rnd random.Source
	if cfg.Seed != 0 {
		rnd = random.New(cfg.Seed)
	} else {
		rnd = random.NewFromTime()
	}

	log.Debug("configuration loaded",
		zap.Int("questions", settings.NumberOfQuestions),
		zap.Bool("follow_ups", settings.IncludeFollowUps),
		zap.String("difficulty", string(settings.Difficulty)),
		zap.Uint64("seed", cfg.Seed),
		zap.String("catalog_version", cat.Version()),
		zap.Int("catalog_questions", cat.QuestionCount()))

	return &deps{
		cfg:      cfg,
		settings: settings,
		catalog:  cat,
		logger:   log,
		rand:     rnd,
	}, nil
}

func newLogger(cfg config.Config, tui bool) (*zap.Logger, error) {
	switch {
	case cfg.LogFile != "":
		return logger.New(cfg.JSON, cfg.Debug, cfg.LogFile)
	case tui:
		return zap.NewNop(), nil
	default:
		return logger.New(cfg.JSON, cfg.Debug)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func (d *deps) selector() *session.Selector {
	return session.NewSelector(d.catalog, d.rand, d.logger)
}

func (d *deps) engine() *feedback.Engine {
	return feedback.NewEngine(d.rand, d.logger)
}

// newSession starts a session with the configured services.
func (d *deps) newSession(domain catalog.Domain, skills []string, settings session.Settings) (*session.Session, error) {
	return session.New(d.selector(), domain, skills, settings, session.WithLogger(d.logger))
}
