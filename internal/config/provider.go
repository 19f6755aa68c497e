package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/osx-upgrade/internal/domain/config"
)

const (
	// EnvPrefix prefixes every environment variable read by viper
	EnvPrefix = "OSX_UPGRADE"
	// DataDirName is the per-project directory holding local configuration
	DataDirName = ".osx-upgrade"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	workDir := v.GetString("work_dir")
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		WorkDir:        workDir,
		DataDir:        filepath.Join(workDir, DataDirName),
		Network:        v.GetString("network"),
		Variant:        v.GetString("variant"),
		PlanFile:       resolvePath(workDir, v.GetString("plan")),
		TemplateDir:    resolvePath(workDir, v.GetString("templates")),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive") || v.GetBool("json"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	planFile, err := LoadPlanFile(cfg.PlanFile)
	if err != nil {
		return nil, err
	}

	headerFormat := config.DefaultHeaderFormat
	if planFile != nil && planFile.HeaderFormat != "" {
		headerFormat = planFile.HeaderFormat
	}
	if err := config.ValidateHeaderFormat(headerFormat); err != nil {
		return nil, err
	}
	cfg.Signatures = config.NewSignatures(headerFormat)

	plans, err := MergePlans(config.DefaultPlans(), planFile)
	if err != nil {
		return nil, err
	}
	cfg.Plans = plans

	if cfg.Variant != "" {
		if _, err := cfg.Plans.Get(cfg.Variant); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(workDir string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(workDir, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("templates", ".")
	v.SetDefault("work_dir", workDir)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// LoadEnvFiles loads .env and .env.local from the working directory.
// Variables already set in the environment are not overridden.
func LoadEnvFiles(workDir string) {
	envFiles := []string{
		filepath.Join(workDir, ".env"),
		filepath.Join(workDir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

func resolvePath(workDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}
