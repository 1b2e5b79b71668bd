// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Command fenci is a small interactive demo of the segmenter: it reads
sentences from stdin, one per line, and prints their cut result, or their
cut_for_search result when -search is given.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/bastiangx/fenci/internal/logger"
	"github.com/bastiangx/fenci/pkg/config"
	"github.com/bastiangx/fenci/pkg/fenci"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	gh      = "https://github.com/bastiangx/fenci"
)

func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	dictPath := flag.String("dict", "", "Path to an additional dictionary file to load alongside the embedded default")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	useHMM := flag.Bool("hmm", defaultConfig.Segment.UseHMM, "Enable the HMM fallback for out-of-vocabulary runs")
	search := flag.Bool("search", false, "Use cut_for_search instead of cut")

	flag.Parse()

	if *showVersion {
		banner := logger.NewWithConfig("", log.GetLevel(), false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		banner.SetStyles(styles)

		banner.Print("")
		banner.Print("[fenci] a dictionary + DAG + HMM Chinese word segmenter")
		banner.Print("", "version", Version)
		banner.Print("")
		banner.Print("use --help to see available options")
		banner.Print("")
		banner.Print("Find out more at", "gh", gh)
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if _, err := config.InitConfig(resolveConfigPath(*configFile)); err != nil {
		log.Fatalf("Failed to init config: %v", err)
	}

	seg := fenci.New()
	if *dictPath != "" {
		f, err := os.Open(*dictPath)
		if err != nil {
			log.Fatalf("Failed to open dict file: %v", err)
		}
		defer f.Close()
		if err := seg.LoadDict(f); err != nil {
			log.Fatalf("Failed to load dict file: %v", err)
		}
		log.Debugf("Loaded additional dictionary from %s", *dictPath)
	}

	log.Debugf("useHMM=%v search=%v", *useHMM, *search)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var words []string
		if *search {
			words = seg.CutForSearch(line, *useHMM)
		} else {
			words = seg.Cut(line, *useHMM)
		}
		fmt.Println(words)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin read error: %v", err)
	}
}

func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return "config.toml"
}
