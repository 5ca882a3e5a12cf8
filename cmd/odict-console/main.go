// Command odict-console is an interactive console for the demo device
// dictionary.
//
// It demonstrates a complete dictionary front end with:
//   - CLI argument parsing
//   - Path queries, value reads and validated writes
//   - YAML declaration checking
//   - Value snapshots persisted across runs
//   - Access logging through slog
//
// Usage:
//
//	odict-console [flags]
//
// Flags:
//
//	-state string      Snapshot file; values are restored at startup and saved on exit
//	-decl string       YAML declaration to check the dictionary against
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-trace             Log every dictionary access
//
// Examples:
//
//	# Plain interactive session
//	odict-console
//
//	# Persist values across runs and trace accesses
//	odict-console -state /tmp/odict.cbor -trace -log-level debug
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/edgeparam/odict/pkg/examples"
	"github.com/edgeparam/odict/pkg/od"
	"github.com/edgeparam/odict/pkg/odcon"
	"github.com/edgeparam/odict/pkg/oddecl"
	"github.com/edgeparam/odict/pkg/odlog"
	"github.com/edgeparam/odict/pkg/odsnap"
)

// Config holds the console configuration.
type Config struct {
	StateFile string
	DeclFile  string
	LogLevel  string
	Trace     bool
}

var config Config

func init() {
	flag.StringVar(&config.StateFile, "state", "", "Snapshot file; restored at startup, saved on exit")
	flag.StringVar(&config.DeclFile, "decl", "", "YAML declaration to check the dictionary against")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Trace, "trace", false, "Log every dictionary access")
}

func main() {
	flag.Parse()

	logger := setupLogging(config.LogLevel)

	sessionID := uuid.New().String()
	logger.Info("odict console starting", "session", sessionID)

	dev := examples.NewDevice()
	dict := dev.Dictionary()

	var access odlog.Logger = odlog.NoopLogger{}
	if config.Trace {
		access = odlog.NewSlogAdapter(logger)
	}

	if config.DeclFile != "" {
		if err := checkDeclaration(config.DeclFile, dict, logger); err != nil {
			log.Fatalf("Declaration check failed: %v", err)
		}
	}

	var store *odsnap.Store
	if config.StateFile != "" {
		store = odsnap.NewStore(config.StateFile, access)
		stats, err := store.Load(dict)
		if err != nil {
			logger.Warn("snapshot restore incomplete", "error", err)
		}
		logger.Info("snapshot restored",
			"path", config.StateFile, "applied", stats.Applied, "skipped", stats.Skipped)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "odict> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatalf("Failed to create readline: %v", err)
	}
	defer rl.Close()

	console := odcon.New(dict, rl.Stdout(), access)
	console.Execute("help")

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		switch strings.ToLower(strings.Fields(input)[0]) {
		case "quit", "exit", "q":
			fmt.Fprintln(rl.Stdout(), "Exiting...")
			shutdown(store, dict, logger)
			return
		default:
			console.Execute(input)
		}
	}

	shutdown(store, dict, logger)
}

func shutdown(store *odsnap.Store, dict *od.Dictionary, logger *slog.Logger) {
	if store == nil {
		return
	}
	if err := store.Save(dict); err != nil {
		logger.Error("snapshot save failed", "path", store.Path(), "error", err)
		return
	}
	logger.Info("snapshot saved", "path", store.Path())
}

func setupLogging(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func checkDeclaration(path string, dict *od.Dictionary, logger *slog.Logger) error {
	decl, err := oddecl.Load(path)
	if err != nil {
		return err
	}

	if result := decl.Validate(); !result.Valid {
		for _, issue := range result.Errors {
			logger.Error("declaration invalid", "issue", issue.String())
		}
		return fmt.Errorf("%d structural errors in %s", len(result.Errors), path)
	}

	result := oddecl.Check(decl, dict)
	for _, issue := range result.Warnings {
		logger.Warn("declaration check", "issue", issue.String())
	}
	if !result.Valid {
		for _, issue := range result.Errors {
			logger.Error("declaration mismatch", "issue", issue.String())
		}
		return fmt.Errorf("%d mismatches against %s", len(result.Errors), path)
	}

	logger.Info("declaration check passed", "path", path, "objects", len(decl.Objects))
	return nil
}
