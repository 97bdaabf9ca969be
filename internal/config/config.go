// Package config locates, validates and normalizes the gitie configuration
// and its companion commit-prompt document.
//
// Both documents resolve independently through the same precedence chain:
// the user-scope file under ~/.config/gitie, else a project-local file in
// the working directory, else the bundled template. Whenever a lower
// precedence source wins it is copied up to the user-scope location so the
// next run finds it there.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/phravins/gitie/assets"
	apperrors "github.com/phravins/gitie/internal/errors"
	"github.com/phravins/gitie/internal/logger"
	"github.com/phravins/gitie/pkg/utils"
)

const (
	userConfigDir     = ".config/gitie"
	userConfigFile    = "config.toml"
	userPromptFile    = "commit-prompt"
	projectConfigFile = ".gitie.toml"
	projectPromptFile = ".gitie-prompt"

	// PlaceholderAPIKey is the sentinel shipped in templates meaning
	// "no key configured".
	PlaceholderAPIKey = "YOUR_API_KEY_IF_NEEDED"

	defaultTemperature = 0.7

	// EnvAssetsConfig and EnvAssetsPrompt redirect the bundled template
	// lookups to on-disk files for alternate deployment layouts.
	EnvAssetsConfig = "GITIE_ASSETS_CONFIG"
	EnvAssetsPrompt = "GITIE_ASSETS_PROMPT"
)

// Config is the resolved configuration, built once per invocation and
// never mutated afterwards. An empty APIKey means no authentication.
type Config struct {
	APIURL       string
	ModelName    string
	Temperature  float64
	APIKey       string
	SystemPrompt string
}

type aiSection struct {
	APIURL      string  `mapstructure:"api_url"`
	ModelName   string  `mapstructure:"model_name"`
	Temperature float64 `mapstructure:"temperature"`
	APIKey      string  `mapstructure:"api_key"`
}

type fileConfig struct {
	AI aiSection `mapstructure:"ai"`
}

// Resolver loads the configuration and prompt documents. Home and WorkDir
// are injectable for tests.
type Resolver struct {
	Home    string
	WorkDir string
	Log     *logger.Logger
}

// NewResolver builds a Resolver rooted at the current user's home and
// working directories.
func NewResolver(log *logger.Logger) (*Resolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to determine home directory")
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to determine working directory")
	}
	return &Resolver{Home: home, WorkDir: wd, Log: log}, nil
}

// UserConfigPath returns the user-scope configuration file path.
func (r *Resolver) UserConfigPath() string {
	return filepath.Join(r.Home, userConfigDir, userConfigFile)
}

// UserPromptPath returns the user-scope commit-prompt file path.
func (r *Resolver) UserPromptPath() string {
	return filepath.Join(r.Home, userConfigDir, userPromptFile)
}

// Resolve loads, validates and normalizes the configuration and the
// commit-prompt document. Called once at startup.
func (r *Resolver) Resolve() (*Config, error) {
	cfgContent, cfgPath, err := r.resolveDocument(
		r.UserConfigPath(),
		filepath.Join(r.WorkDir, projectConfigFile),
		assets.ConfigTemplateName,
		EnvAssetsConfig,
		apperrors.ErrConfigRead,
	)
	if err != nil {
		return nil, err
	}

	cfg, err := parseConfig(cfgContent, cfgPath)
	if err != nil {
		return nil, err
	}

	promptContent, promptPath, err := r.resolveDocument(
		r.UserPromptPath(),
		filepath.Join(r.WorkDir, projectPromptFile),
		assets.PromptTemplateName,
		EnvAssetsPrompt,
		apperrors.ErrPromptMissing,
	)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(promptContent)) == 0 {
		return nil, apperrors.NewConfigError(promptPath, apperrors.ErrPromptMissing)
	}

	cfg.SystemPrompt = string(promptContent)
	r.Log.Debug("configuration resolved", "config", cfgPath, "prompt", promptPath)
	return cfg, nil
}

// resolveDocument walks the precedence chain for one document. Only the
// absence of a source moves resolution to the next level; a read failure
// is terminal. When a non-user source wins, its content is materialized
// at the user-scope path.
func (r *Resolver) resolveDocument(userPath, projectPath, assetName, envOverride string, missing error) ([]byte, string, error) {
	if utils.FileExists(userPath) {
		content, err := os.ReadFile(userPath)
		if err != nil {
			return nil, "", apperrors.NewConfigError(userPath, apperrors.Wrap(apperrors.ErrConfigRead, err.Error()))
		}
		return content, userPath, nil
	}

	if utils.FileExists(projectPath) {
		content, err := os.ReadFile(projectPath)
		if err != nil {
			return nil, "", apperrors.NewConfigError(projectPath, apperrors.Wrap(apperrors.ErrConfigRead, err.Error()))
		}
		r.Log.Info("using project-local document", "path", projectPath)
		if err := r.copyUp(userPath, content); err != nil {
			return nil, "", err
		}
		return content, projectPath, nil
	}

	content, srcPath, err := r.bundledTemplate(assetName, envOverride)
	if err != nil {
		return nil, "", apperrors.NewConfigError(srcPath, missing)
	}
	r.Log.Info("using bundled template", "path", srcPath)
	if err := r.copyUp(userPath, content); err != nil {
		return nil, "", err
	}
	return content, srcPath, nil
}

func (r *Resolver) bundledTemplate(assetName, envOverride string) ([]byte, string, error) {
	if override := os.Getenv(envOverride); override != "" {
		content, err := os.ReadFile(override)
		if err != nil {
			return nil, override, err
		}
		return content, override, nil
	}
	content, err := assets.GetAsset(assetName)
	if err != nil {
		return nil, assetName, err
	}
	return content, assetName, nil
}

func (r *Resolver) copyUp(userPath string, content []byte) error {
	if err := utils.WriteFileString(userPath, string(content)); err != nil {
		return apperrors.NewConfigError(userPath, apperrors.Wrap(apperrors.ErrConfigWrite, err.Error()))
	}
	r.Log.Debug("materialized user-scope copy", "path", userPath)
	return nil
}

func parseConfig(content []byte, path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("ai.temperature", defaultTemperature)

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, apperrors.NewConfigError(path, apperrors.Wrap(apperrors.ErrConfigParse, err.Error()))
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, apperrors.NewConfigError(path, apperrors.Wrap(apperrors.ErrConfigParse, err.Error()))
	}

	cfg := &Config{
		APIURL:      fc.AI.APIURL,
		ModelName:   fc.AI.ModelName,
		Temperature: fc.AI.Temperature,
		APIKey:      normalizeAPIKey(fc.AI.APIKey),
	}

	if cfg.APIURL == "" {
		return nil, apperrors.NewConfigError(path, fieldMissing("ai.api_url"))
	}
	if cfg.ModelName == "" {
		return nil, apperrors.NewConfigError(path, fieldMissing("ai.model_name"))
	}
	return cfg, nil
}

func fieldMissing(field string) error {
	return apperrors.Wrap(apperrors.ErrFieldMissing, field)
}

// normalizeAPIKey rewrites the template placeholder to "no key".
func normalizeAPIKey(key string) string {
	if key == PlaceholderAPIKey {
		return ""
	}
	return key
}
