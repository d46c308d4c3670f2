// Copyright (c) Microsoft. All rights reserved.

// Package cli is the command bootstrap shared by the sample programs. It
// loads an optional .env file, binds flags and GITHUB_MODELS_* environment
// variables through viper and builds the endpoint configuration and logger
// handed to each sample.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/microsoft/ghmodels-agents/githubmodels"
)

const envPrefix = "GITHUB_MODELS"

// Env is what a sample receives when its command runs.
type Env struct {
	Config githubmodels.Config
	Model  string
	Logger *slog.Logger

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Sample describes one runnable sample.
type Sample struct {
	Use   string
	Short string
	// DefaultModel is used when neither --model nor GITHUB_MODELS_MODEL is set.
	DefaultModel string
	// Args validates positional arguments. Nil accepts none.
	Args cobra.PositionalArgs
	// Flags registers extra flags on the command.
	Flags func(cmd *cobra.Command)
	Run   func(ctx context.Context, cmd *cobra.Command, env *Env, args []string) error
	// ErrorHint is printed after the error report when Run fails.
	ErrorHint string
}

// NewCommand builds the cobra command for s with its own viper instance.
func NewCommand(s Sample) *cobra.Command {
	v := viper.New()
	args := s.Args
	if args == nil {
		args = cobra.NoArgs
	}

	cmd := &cobra.Command{
		Use:           s.Use,
		Short:         s.Short,
		Args:          args,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.String("env-file", ".env", "Dotenv file loaded before reading the environment.")
	flags.String("endpoint", "", "Endpoint base URL (defaults to "+githubmodels.DefaultEndpoint+").")
	flags.String("api-version", "", "api-version query parameter (defaults to "+githubmodels.DefaultAPIVersion+").")
	flags.String("model", s.DefaultModel, "Model identifier.")
	flags.String("log-level", "warn", "Logging level: debug|info|warn|error.")
	flags.String("log-format", "text", "Logging format: text|json.")

	_ = v.BindPFlag("endpoint", flags.Lookup("endpoint"))
	_ = v.BindPFlag("api_version", flags.Lookup("api-version"))
	_ = v.BindPFlag("model", flags.Lookup("model"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logging.format", flags.Lookup("log-format"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("token")
	_ = v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT")

	if s.Flags != nil {
		s.Flags(cmd)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		envFile := flags.Lookup("env-file")
		if err := loadEnvFile(envFile.Value.String(), envFile.Changed); err != nil {
			return err
		}

		logger, err := NewLogger(LoggerConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		}, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		env := &Env{
			Config: configFromViper(v, logger),
			Model:  strings.TrimSpace(v.GetString("model")),
			Logger: logger,
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			Err:    cmd.ErrOrStderr(),
		}
		if env.Model == "" {
			env.Model = githubmodels.DefaultModel
		}
		if s.Run == nil {
			return fmt.Errorf("sample %q has no run function", s.Use)
		}
		return s.Run(cmd.Context(), cmd, env, args)
	}
	return cmd
}

// Main runs the sample and exits with status 1 on failure, printing the error
// with any status and body it carries.
func Main(s Sample) {
	cmd := NewCommand(s)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		ReportError(cmd.ErrOrStderr(), err)
		if s.ErrorHint != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), s.ErrorHint)
		}
		os.Exit(1)
	}
}

// configFromViper maps the bound keys onto the factory configuration.
// Blank values count as unset; others are kept verbatim.
func configFromViper(v *viper.Viper, logger *slog.Logger) githubmodels.Config {
	get := func(key string) string {
		s := v.GetString(key)
		if strings.TrimSpace(s) == "" {
			return ""
		}
		return s
	}
	return githubmodels.Config{
		Token:      get("token"),
		Endpoint:   get("endpoint"),
		APIVersion: get("api_version"),
		Logger:     logger,
	}
}

// loadEnvFile loads path without overriding variables already set. A missing
// file is an error only when the path was given explicitly.
func loadEnvFile(path string, explicit bool) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}
