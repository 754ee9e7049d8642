// chess-rules plays chess moves under the full rules of chess and reports
// the resulting position, or counts move paths from a position.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

// run carries out one invocation and returns the exit status: 2 for bad
// options, 1 when a game or perft run fails.
func run() int {
	switch {
	case *help:
		usage()
		return 0
	case *version:
		fmt.Printf("chess-rules version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	files, err := openStreams(cfg, streamPaths{
		output:       *outputFile,
		appendOutput: *appendOutput,
		log:          *logFile,
		appendLog:    *appendLog,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { closeAll(files) }()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(cfg.LogFile, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	w := output.NewWriter(cfg.OutputFile, cfg)
	if cfg.Perft.Enabled() {
		err = runPerft(cfg, w, logger)
	} else {
		err = runGames(cfg, moveSource(), w, logger)
	}
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if closeErr := closeAll(files); err == nil {
		err = closeErr
	}
	files = nil
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// moveSource returns the movetext given by -moves, else the remaining
// arguments, else stdin. Movetext may hold several PGN games.
func moveSource() io.Reader {
	if *moveList != "" {
		return strings.NewReader(*moveList)
	}
	if flag.NArg() > 0 {
		return strings.NewReader(strings.Join(flag.Args(), " "))
	}
	return os.Stdin
}

// streamPaths names the files given by -o, -a, -l and -L.
type streamPaths struct {
	output       string
	appendOutput bool
	log          string
	appendLog    string
}

// openStreams points the report and the log at the named files and returns
// them for the caller to close. -L wins over -l. On failure the files
// already opened are closed.
func openStreams(cfg *config.Config, paths streamPaths) ([]*os.File, error) {
	logPath, logAppends := paths.log, false
	if paths.appendLog != "" {
		logPath, logAppends = paths.appendLog, true
	}
	files := []struct {
		path    string
		appends bool
		set     func(io.Writer)
	}{
		{paths.output, paths.appendOutput, cfg.SetOutput},
		{logPath, logAppends, cfg.SetLogFile},
	}

	var opened []*os.File
	for _, f := range files {
		if f.path == "" {
			continue
		}
		file, err := openFile(f.path, f.appends)
		if err != nil {
			closeAll(opened)
			return nil, err
		}
		opened = append(opened, file)
		f.set(file)
	}
	return opened, nil
}

func closeAll(files []*os.File) error {
	var first error
	for _, f := range files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openFile(path string, appends bool) (*os.File, error) {
	if !appends {
		return os.Create(path)
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // report and log files are meant to be readable
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves in SAN or coordinate notation (Nf3, e7e8q) from a position\n")
	fmt.Fprintf(os.Stderr, "and reports the game, or counts move paths with -perft. PGN input with\n")
	fmt.Fprintf(os.Stderr, "tags, comments and several games is accepted on stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-rules e2e4 e7e5 g1f3\n")
	fmt.Fprintf(os.Stderr, "  chess-rules < games.pgn\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -J -fen \"7k/8/6K1/8/8/8/8/5Q2 w - - 0 1\" f1f7\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -perft 5 -divide -workers 0\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -perft 6 -hash 1000000\n")
}
