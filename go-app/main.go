// go-app/main.go
// HTTP service main for the scrabble query engine.
// Copyright (C) 2024 Mike Werezak

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	scrabble "github.com/mwerezak/scrabble-query"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "scrabble-server",
	ReportTimestamp: true,
})

// Bearer authorization header (or "" if no auth required)
var AUTH_HEADER string

// Allowed access control (CORS) origins
var ALLOWED_ORIGINS = "*" // Default to all origins allowed

// The lexicon served by this process, loaded once at startup
var lexicon *scrabble.Lexicon

func validate(w http.ResponseWriter, r *http.Request, req any) bool {
	// Set CORS headers
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", ALLOWED_ORIGINS)
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Handle preflight OPTIONS request
	if r.Method == "OPTIONS" {
		// Returning false simply causes the handler to return the response headers
		return false
	}

	// We only accept POST requests
	if r.Method != "POST" {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return false
	}
	// Check for a bearer authorization token,
	// which must match the environment variable
	// ACCESS_KEY, if present
	if AUTH_HEADER != "" {
		authHeader := r.Header.Get("Authorization")
		if authHeader != AUTH_HEADER {
			http.Error(w,
				fmt.Sprintf(
					"Authorization header mismatch: got '%s'",
					authHeader,
				),
				http.StatusUnauthorized,
			)
			return false
		}
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		// Not valid JSON
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func queryHandler(w http.ResponseWriter, r *http.Request) {
	var req scrabble.QueryRequest
	if !validate(w, r, &req) {
		return
	}
	scrabble.HandleQueryRequest(w, lexicon, req)
}

func wordcheckHandler(w http.ResponseWriter, r *http.Request) {
	var req scrabble.WordCheckRequest
	if !validate(w, r, &req) {
		return
	}
	scrabble.HandleWordCheckRequest(w, lexicon, req)
}

func main() {
	logger.Info("Query service starting", "go", runtime.Version())
	// Pick up a .env file, if present, before reading the environment
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}
	// Figure out the authorization header, if required
	accessKey := os.Getenv("ACCESS_KEY")
	if accessKey != "" {
		AUTH_HEADER = "Bearer " + accessKey
	}
	// Establish allowed CORS origins
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		logger.Info("Allowed CORS origins", "origins", origins)
		ALLOWED_ORIGINS = origins
	} else {
		logger.Info("No ALLOWED_ORIGINS specified, allowing all")
	}
	// Load the word list
	config, err := scrabble.LoadConfig(os.Getenv("CONFIG"))
	if err != nil {
		logger.Fatal("Bad config", "err", err)
	}
	wordlist := os.Getenv("WORDLIST")
	if wordlist == "" {
		wordlist = config.Wordlist
	}
	var skipped int
	lexicon, skipped, err = scrabble.LoadLexiconFile(wordlist)
	if err != nil {
		logger.Fatal("Failed to read word list", "path", wordlist, "err", err)
	}
	logger.Info("Loaded word list", "path", wordlist, "words", lexicon.WordCount(), "skipped", skipped)
	// Set up the service handlers
	http.HandleFunc("/query", queryHandler)
	http.HandleFunc("/wordcheck", wordcheckHandler)
	// Establish the port number to listen on
	port := os.Getenv("PORT")
	if port == "" {
		port = config.Port
	}
	logger.Info("Listening", "port", port)
	// Start the server loop
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Fatal("Server terminated", "err", err)
	}
}
