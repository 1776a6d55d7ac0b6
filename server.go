// server.go
//
// Copyright (C) 2024 Mike Werezak
//
// This file implements a compact HTTP server that receives
// JSON encoded query requests and returns JSON encoded responses.

package scrabble

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ProtocolVersion is reported in the version field of every
// /query and /wordcheck response envelope
const ProtocolVersion = "1.0"

// QueryRequest is an incoming query: the letter pool, the word
// specification, the optional crossword tokens, and a result cap
type QueryRequest struct {
	Pool       string   `json:"pool"`
	Spec       string   `json:"spec"`
	Crosswords []string `json:"crosswords"`
	Limit      int      `json:"limit"`
}

// QueryResult is a single ranked answer
type QueryResult struct {
	Word       string   `json:"word"`
	Crosswords []string `json:"crosswords,omitempty"`
	Score      int      `json:"score"`
}

// QueryResponse is the response envelope for /query
type QueryResponse struct {
	Version string        `json:"version"`
	Count   int           `json:"count"`
	Results []QueryResult `json:"results"`
}

// HandleQueryRequest parses, evaluates and answers a query request
// against the given Lexicon
func HandleQueryRequest(w http.ResponseWriter, lex *Lexicon, req QueryRequest) {
	rack, err := ParseLetterPool(req.Pool)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	spec, err := ParseWordSpec(req.Spec)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	crosswords := make([]Crossword, 0, len(req.Crosswords))
	for _, token := range req.Crosswords {
		cw, err := ParseCrossword(token)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		crosswords = append(crosswords, cw)
	}
	query, err := NewQuery(rack, spec, crosswords)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	results := RunQuery(lex, query, req.Limit)
	response := QueryResponse{
		Version: ProtocolVersion,
		Count:   len(results),
		Results: make([]QueryResult, len(results)),
	}
	for i, result := range results {
		response.Results[i] = QueryResult{
			Word:       result.Word,
			Crosswords: result.Crosswords,
			Score:      result.Score,
		}
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Unable to generate valid JSON
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WordCheckRequest asks whether each of a list of words is in
// the lexicon
type WordCheckRequest struct {
	Words []string `json:"words"`
}

// WordCheckResult is the lexicon verdict for one word
type WordCheckResult struct {
	Word string `json:"word"`
	Ok   bool   `json:"ok"`
}

// WordCheckResponse is the response envelope for /wordcheck
type WordCheckResponse struct {
	Version string            `json:"version"`
	Results []WordCheckResult `json:"results"`
}

// MaxWordCheckWords caps the number of words per wordcheck request
const MaxWordCheckWords = 256

// HandleWordCheckRequest answers a word check request against the
// given Lexicon
func HandleWordCheckRequest(w http.ResponseWriter, lex *Lexicon, req WordCheckRequest) {
	if len(req.Words) > MaxWordCheckWords {
		msg := fmt.Sprintf("Too many words; at most %v per request.\n", MaxWordCheckWords)
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	response := WordCheckResponse{
		Version: ProtocolVersion,
		Results: make([]WordCheckResult, len(req.Words)),
	}
	for i, word := range req.Words {
		response.Results[i] = WordCheckResult{Word: word, Ok: lex.Contains(word)}
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
