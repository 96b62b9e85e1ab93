package main

import (
	"context"
	"os"
	"strings"

	"github.com/wsmith/huedo/cmd/huedo/commands"
	"github.com/wsmith/huedo/internal/config"
	"github.com/wsmith/huedo/internal/utils"
	"github.com/wsmith/huedo/pkg/hue"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// flagValue scans args for a flag given as "--name value" or
// "--name=value". Needed because the config must be loaded before cobra
// parses anything.
func flagValue(args []string, name string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"=")
		}
	}
	return ""
}

func main() {
	// Load configuration first; the client needs it before commands run
	cfg, err := config.Load(flagValue(os.Args[1:], "--config"))
	if err != nil {
		logger := utils.SetupErrorLogger()
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Command line flags override config file values
	logLevel := cfg.Logging.Level
	if v := flagValue(os.Args[1:], "--log-level"); v != "" {
		logLevel = v
	}
	logFormat := cfg.Logging.Format
	if v := flagValue(os.Args[1:], "--log-format"); v != "" {
		logFormat = v
	}

	logger := utils.SetupLogger(logLevel, logFormat)
	utils.SetAsDefaultLogger(logger)

	apiClient := hue.New(cfg, logger)

	rootCmd := commands.NewRootCommand(logger, version, commit, buildDate)

	ctx := rootCmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, commands.ClientContextKey, apiClient)
	ctx = context.WithValue(ctx, commands.ConfigContextKey, cfg)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
