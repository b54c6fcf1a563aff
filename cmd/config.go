package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	"iacscan.dev/pkg/iacscan/internal/controller"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "iacscan"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName           = "output"
	verboseFlagName          = "verbose"
	uiFlagName               = "ui"
	reportFormatFlagName     = "report-format"
	cacheDirFlagName         = "cache-dir"
	policyEnginePathFlagName = "policy-engine-path"
	rulesBundlePathFlagName  = "rules-bundle-path"
	orgFlagName              = "org"

	uiModeKey              = "ui.mode"
	reportFormatKey        = "report.format"
	cacheDirKey            = "cache.dir"
	enginePathKey          = "engine.path"
	rulesPathKey           = "rules.path"
	artifactsRepositoryKey = "artifacts.repository"
	policyEngineVersionKey = "artifacts.policy_engine_version"
	rulesBundleVersionKey  = "artifacts.rules_bundle_version"
	githubTokenKey         = "github.token"
	orgIDKey               = "org.id"
	orgSettingsKey         = "org.settings"

	defaultReportsDir          = ".iacscan-reports"
	defaultUIMode              = controller.UIModeAuto
	defaultReportFormat        = string(adapter.ReportFormatJSON)
	defaultPolicyEngineVersion = "1.0.0"
	defaultRulesBundleVersion  = "1.0.0"

	envPrefix = "IACSCAN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".iacscan.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(uiModeKey, defaultUIMode)
	viper.SetDefault(reportFormatKey, defaultReportFormat)
	viper.SetDefault(cacheDirKey, defaultCacheDir())
	viper.SetDefault(enginePathKey, "")
	viper.SetDefault(rulesPathKey, "")
	viper.SetDefault(artifactsRepositoryKey, "")
	viper.SetDefault(policyEngineVersionKey, defaultPolicyEngineVersion)
	viper.SetDefault(rulesBundleVersionKey, defaultRulesBundleVersion)
	viper.SetDefault(orgIDKey, "")

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "warning: ignoring %s: %v\n", configFileName, err)
	}
}

// defaultCacheDir places artifacts in the per-user cache directory, falling
// back to a dot directory in the working directory.
func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return filepath.Join(configFolderPath, "."+configBaseName+"-cache")
	}

	return filepath.Join(dir, configBaseName)
}

// loadOrgSettings decodes the org settings section of the configuration.
func loadOrgSettings() (m.OrgSettings, error) {
	var settings m.OrgSettings

	if !viper.IsSet(orgSettingsKey) {
		return settings, nil
	}

	if err := viper.UnmarshalKey(orgSettingsKey, &settings); err != nil {
		return m.OrgSettings{}, fmt.Errorf("decode %s: %w", orgSettingsKey, err)
	}

	return settings, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
