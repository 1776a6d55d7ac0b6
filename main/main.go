// main.go
// Copyright (C) 2024 Mike Werezak

// Command line tool for the scrabble query engine.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	scrabble "github.com/mwerezak/scrabble-query"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "scrabble",
	ReportTimestamp: false,
})

func usage() {
	fmt.Fprintf(os.Stderr,
		"usage: %s query [-n NUM] [-wordlist FILE] [-config FILE] POOL SPEC [CROSSWORD...]\n",
		os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 || os.Args[1] != "query" {
		usage()
	}
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit the output to the top NUM results")
	wordlist := fs.String("wordlist", "", "Path to the word list file")
	configPath := fs.String("config", "", "Path to a TOML config file")
	fs.Parse(os.Args[2:])
	args := fs.Args()
	if len(args) < 2 {
		usage()
	}

	config, err := scrabble.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Bad config", "err", err)
	}
	if *wordlist == "" {
		*wordlist = config.Wordlist
	}
	if *limit == 0 {
		*limit = config.Limit
	}

	rack, err := scrabble.ParseLetterPool(args[0])
	if err != nil {
		logger.Fatal("Invalid letter pool", "pool", args[0], "err", err)
	}
	spec, err := scrabble.ParseWordSpec(args[1])
	if err != nil {
		logger.Fatal("Invalid word specification", "spec", args[1], "err", err)
	}
	crosswords := make([]scrabble.Crossword, 0, len(args)-2)
	for _, token := range args[2:] {
		cw, err := scrabble.ParseCrossword(token)
		if err != nil {
			logger.Fatal("Invalid crossword", "crossword", token, "err", err)
		}
		crosswords = append(crosswords, cw)
	}
	query, err := scrabble.NewQuery(rack, spec, crosswords)
	if err != nil {
		logger.Fatal("Invalid query", "err", err)
	}

	lex, skipped, err := scrabble.LoadLexiconFile(*wordlist)
	if err != nil {
		logger.Fatal("Failed to read word list", "path", *wordlist, "err", err)
	}
	logger.Info("Loaded word list", "path", *wordlist, "words", lex.WordCount(), "skipped", skipped)

	oracle := scrabble.NewCrossOracle(lex, query)
	collector := scrabble.NewCollector(query, oracle, *limit)
	scrabble.FindPlacements(lex, query, oracle, collector.Add)
	results := collector.Results()
	for _, result := range results {
		line := []string{strings.ToUpper(result.Word)}
		for _, cw := range result.Crosswords {
			line = append(line, strings.ToUpper(cw))
		}
		line = append(line, fmt.Sprint(result.Score))
		fmt.Println(strings.Join(line, " "))
	}
	if extra := collector.Total() - len(results); extra > 0 {
		fmt.Printf("(%d more result(s)...)\n", extra)
	}
}
