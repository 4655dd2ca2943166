package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
)

func main() {
	var (
		format       string
		announcement string
		logLevel     slog.Level
	)

	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&format, "format", formatText, "output format (text, json)")
	fs.StringVar(&announcement, "announcement", defaultAnnouncement, "")
	fs.TextVar(&logLevel, "log-level", slog.LevelInfo, "")
	fs.SetOutput(os.Stdout)

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	opts := options{
		format:       format,
		announcement: announcement,
	}

	if err := run(os.Stdout, opts, logger); err != nil {
		logger.Error("demo failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
