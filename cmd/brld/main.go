// Command brld is the braille-display access daemon: it wires the
// reactor, session table, window/cursor tracking, command handler stack,
// routing supervisor, and driver-restart supervisor into a runnable
// program against the bundled reference console driver.
package main

import (
	"flag"
	"os"

	"github.com/garaekz/brld/internal/corelog"
	"github.com/garaekz/brld/internal/daemon"
	"github.com/garaekz/brld/internal/prefs"
)

func main() {
	os.Exit(int(run()))
}

func run() daemon.ExitCode {
	var (
		prefsPath = flag.String("preferences", "", "path to a binary preferences file (defaults built in if unset)")
		logLevel  = flag.String("log-level", "info", "trace|debug|info|warn|error")
		logFile   = flag.String("log-file", "", "also write logs to this file, with rotation (disabled if unset)")
	)
	flag.Parse()

	level, ok := corelog.ParseLevel(*logLevel)
	if !ok {
		corelog.Warn("unrecognized log level %q, keeping default", *logLevel)
		level = corelog.LevelInfo
	}
	corelog.SetLevel(level)

	if *logFile != "" {
		opts := corelog.DefaultOptions()
		opts.Level = level
		opts.FileLevel = level
		opts.LogFile = *logFile
		corelog.Configure(opts)
	}

	p := loadPreferences(*prefsPath)

	prog := daemon.New(daemon.Config{
		Input:       os.Stdin,
		Output:      os.Stdout,
		Preferences: p,
	})

	if err := prog.Open(); err != nil {
		corelog.Fatal("failed to open driver: %v", err)
		return daemon.ProgExitFailure
	}
	defer prog.Close()

	return prog.Run()
}

func loadPreferences(path string) prefs.Preferences {
	if path == "" {
		return prefs.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		corelog.Warn("could not read preferences file %q, using defaults: %v", path, err)
		return prefs.Default()
	}

	p, err := prefs.Unmarshal(data)
	if err != nil {
		corelog.Warn("could not decode preferences file %q, using defaults: %v", path, err)
		return prefs.Default()
	}

	return p
}
