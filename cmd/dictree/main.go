// Copyright 2025 The dictree Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the dictree binary: a ranked prefix-tree dictionary
served over msgpack IPC, or explored from an interactive prompt.

# Usage

Load a word list and serve predictions over stdin/stdout:

	dictree -f word-popularity.txt

Run the interactive prompt with debug logging:

	dictree -c -d -f words.tsv --limit 10

A word list holds one entry per line. Plain lists (.txt, .lst) rank words by
line order, the first line being the most popular. Ranked lists (.tsv, .rank)
carry an explicit integer rank after the word, lower meaning more popular.
Other extensions are detected from their first line.

# Configuration

Runtime configuration lives in a TOML file that is created with defaults on
first run:

	[dict]
	path = "word-popularity.txt"
	format = "auto"
	max_words = 0

	[cli]
	default_limit = 5
	warmup_prefix = "t"

	[server]
	max_limit = 64
	max_prefix = 60
	cache_size = 4096

Flags override the file. See package server for the IPC protocol.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/dictree/internal/cli"
	"github.com/bastiangx/dictree/internal/logger"
	"github.com/bastiangx/dictree/internal/utils"
	"github.com/bastiangx/dictree/pkg/config"
	"github.com/bastiangx/dictree/pkg/dictionary"
	"github.com/bastiangx/dictree/pkg/server"
	"github.com/bastiangx/dictree/pkg/suggest"
	"github.com/bastiangx/dictree/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
)

const (
	Version = "0.3.0"
	AppName = utils.AppName
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow between config, loading and the chosen front end.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML config file")
	dataPath := flag.StringP("data", "f", defaults.Dict.Path, "Word list to load")
	format := flag.String("format", defaults.Dict.Format, "Word list format: auto, text or ranked")
	debugMode := flag.BoolP("debug", "d", false, "Toggle debug mode")
	cliMode := flag.BoolP("cli", "c", false, "Run the interactive prompt instead of the IPC server")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of predictions to show")
	minPrefix := flag.Int("prmin", defaults.CLI.DefaultMinLen, "Minimum prefix length")
	maxPrefix := flag.Int("prmax", defaults.CLI.DefaultMaxLen, "Maximum prefix length")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable prompt input filtering")
	wordLimit := flag.Int("words", defaults.Dict.MaxWords, "Maximum number of words to load (0 for all)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(usedConfig))
	applyFlags(cfg, dataPath, format, limit, minPrefix, maxPrefix, noFilter, wordLimit)

	dict, err := loadDictionary(cfg.Dict)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	completer := suggest.NewCompleterFor(dict, cfg.Server.CacheSize)

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", cfg.CLI.DefaultMinLen,
			"maxPrefix", cfg.CLI.DefaultMaxLen,
			"limit", cfg.CLI.DefaultLimit,
			"noFilter", cfg.CLI.DefaultNoFilter)

		handler := cli.NewInputHandler(completer, cfg.CLI.DefaultMinLen, cfg.CLI.DefaultMaxLen, cfg.CLI.DefaultLimit, cfg.CLI.DefaultNoFilter)
		if dict.Len() > 0 {
			handler.Warmup(cfg.CLI.WarmupPrefix)
		}
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(cfg.Dict.Path, dict.Len())
	srv := server.NewServer(completer, cfg.Server, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cfg *config.Config, dataPath, format *string, limit, minPrefix, maxPrefix *int, noFilter *bool, wordLimit *int) {
	if flag.CommandLine.Changed("data") {
		cfg.Dict.Path = *dataPath
	}
	if flag.CommandLine.Changed("format") {
		cfg.Dict.Format = *format
	}
	if flag.CommandLine.Changed("words") {
		cfg.Dict.MaxWords = *wordLimit
	}
	if flag.CommandLine.Changed("limit") {
		cfg.CLI.DefaultLimit = *limit
	}
	if flag.CommandLine.Changed("prmin") {
		cfg.CLI.DefaultMinLen = *minPrefix
	}
	if flag.CommandLine.Changed("prmax") {
		cfg.CLI.DefaultMaxLen = *maxPrefix
	}
	if flag.CommandLine.Changed("no-filter") {
		cfg.CLI.DefaultNoFilter = *noFilter
	}
}

// loadDictionary resolves and loads the configured word list. A missing file
// yields an empty dictionary.
func loadDictionary(dictCfg config.DictConfig) (*trie.Trie, error) {
	dict := trie.New()

	format, err := dictionary.ParseFormat(dictCfg.Format)
	if err != nil {
		return nil, err
	}

	resolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	log.Debugf("Searching word lists in cwd, executable dir and %s", resolver.ConfigDir())
	path, err := resolver.GetWordListPath(dictCfg.Path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warnf("Word list %s not found, running with empty dict...", dictCfg.Path)
		return dict, nil
	}

	loader := dictionary.NewLoader(afero.NewOsFs(), dictCfg.MaxWords)
	stats, err := loader.LoadFile(path, format, dict)
	if err != nil {
		return nil, err
	}
	log.Debug("Dictionary loaded", "path", path, "words", stats.Words, "skipped", stats.Skipped)
	return dict, nil
}

func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ dictree ] ranked prefix-tree dictionary")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
}

// showStartupInfo writes basic info to stderr; stdout carries the IPC stream.
func showStartupInfo(path string, words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("word list: ( %s ), %s words", path, utils.FormatWithCommas(words))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
