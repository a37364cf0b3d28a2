package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/tsawler/docbridge/gdocs"
	"github.com/tsawler/docbridge/internal/config"
	"github.com/tsawler/docbridge/internal/logging"
)

type commandContext struct {
	configFlag    string
	logLevelFlag  string
	logFormatFlag string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	logger       *slog.Logger
	conversionID string

	// clientOptions are appended when building a Docs client.
	clientOptions []option.ClientOption
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

// setup loads configuration and builds the invocation logger, tagging it
// with a fresh conversion ID.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if c.logLevelFlag != "" {
		level = c.logLevelFlag
	}
	format := cfg.Logging.Format
	if c.logFormatFlag != "" {
		format = c.logFormatFlag
	}
	logger, err := logging.New(logging.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	c.conversionID = uuid.NewString()
	ctx := logging.WithConversionID(commandCtx(cmd), c.conversionID)
	cmd.SetContext(ctx)
	c.logger = logging.WithContext(ctx, logger).With("command", cmd.Name())
	return nil
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// docsClient builds a Docs API client from the [docs] section.
func (c *commandContext) docsClient(ctx context.Context) (*gdocs.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return gdocs.NewClient(ctx, gdocs.Config{
		CredentialsFile: cfg.Docs.CredentialsFile,
		Endpoint:        cfg.Docs.Endpoint,
		BatchSize:       cfg.Docs.BatchSize,
		Logger:          c.log(),
	}, c.clientOptions...)
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// readInput reads the named file, or stdin when name is "-" or empty.
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
