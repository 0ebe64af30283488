package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"tradelens/internal/cli"
	"tradelens/internal/config"
	"tradelens/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(configDirArg(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logCfg := logging.DefaultLogConfig()
	if cfg.Logging.Level != "" {
		logCfg.Level = cfg.Logging.Level
	}
	logCfg.Console = cfg.Logging.Console
	logCfg.File = cfg.Logging.File
	logger := logging.NewLoggerWithConfig(logCfg)

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configDirArg pre-scans os.Args for --config so the directory is known
// before cobra parses flags; config has to be loaded to build the commands.
func configDirArg(args []string) string {
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
