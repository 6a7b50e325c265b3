// cmd/boardcheck/main.go

// boardcheck validates a board profile document against a chip profile and
// prints the resolved configuration or the full conflict list.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"boardcfg-go/profile"
	"boardcfg-go/services/boardcfg"
	"boardcfg-go/types"
)

func newLogger(level string) (*zap.Logger, error) {
	lv, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", level, err)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(os.Stderr), lv)
	return zap.New(core), nil
}

type jsonResult struct {
	OK        bool                  `json:"ok"`
	Config    *types.ResolvedConfig `json:"config,omitempty"`
	Conflicts types.ConflictList    `json:"conflicts,omitempty"`
}

func main() {
	var (
		path     = flag.String("profile", "", "board profile document (.yaml or .json)")
		chip     = flag.String("chip", "", "override the chip named in the profile")
		format   = flag.String("format", "text", "output format: text | json")
		watch    = flag.Bool("watch", false, "revalidate whenever the profile file changes")
		repl     = flag.Bool("repl", false, "interactive mode")
		logLevel = flag.String("log-level", "info", "zap log level")
	)
	flag.Parse()

	log, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if *repl {
		if err := runREPL(os.Stdin, os.Stdout); err != nil {
			log.Fatal("repl failed", zap.Error(err))
		}
		return
	}

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: boardcheck -profile board.yaml [-chip name] [-format text|json] [-watch]")
		os.Exit(2)
	}

	ok := runOnce(log, *path, *chip, *format)

	if *watch {
		runWatch(log, *path, *chip, *format)
		return
	}
	if !ok {
		os.Exit(1)
	}
}

// runOnce loads, validates and prints. Returns false on blocking conflicts.
func runOnce(log *zap.Logger, path, chip, format string) bool {
	spec, err := profile.Load(path)
	if err != nil {
		log.Error("load profile", zap.String("path", path), zap.Error(err))
		return false
	}
	if chip != "" {
		spec.Chip = chip
	}

	cfg, list := boardcfg.ValidateSpec(spec)
	printResult(format, cfg, list)
	log.Info("validated",
		zap.String("path", path),
		zap.Bool("ok", cfg != nil),
		zap.Int("blocking", len(list.Blocking())),
		zap.Int("warnings", len(list.Warnings())))
	return cfg != nil
}

func printResult(format string, cfg *types.ResolvedConfig, list types.ConflictList) {
	if format == "json" {
		out, _ := json.MarshalIndent(jsonResult{OK: cfg != nil, Config: cfg, Conflicts: list}, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Print(types.Report(cfg, list))
}

func runWatch(log *zap.Logger, path, chip, format string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := profile.Watcher{Path: path}
	log.Info("watching profile", zap.String("path", path))

	err := w.Start(ctx, func(spec types.BoardSpec, err error) {
		if err != nil {
			log.Error("reload profile", zap.Error(err))
			return
		}
		if chip != "" {
			spec.Chip = chip
		}
		cfg, list := boardcfg.ValidateSpec(spec)
		printResult(format, cfg, list)
		log.Info("revalidated",
			zap.Bool("ok", cfg != nil),
			zap.Int("blocking", len(list.Blocking())),
			zap.Int("warnings", len(list.Warnings())))
	})
	if err != nil && err != context.Canceled {
		log.Error("watcher stopped", zap.Error(err))
	}
}
