// Package main provides the Motif melody generation CLI.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/motif-ml/motif/internal/config"
	"github.com/motif-ml/motif/internal/generate"
	"github.com/motif-ml/motif/internal/pipeline"
	"github.com/motif-ml/motif/internal/predictor"
	"github.com/motif-ml/motif/internal/store"
	"github.com/motif-ml/motif/internal/symbol"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	if os.Args[1] == "version" {
		fmt.Printf("Motif %s\n", version)
		return
	}

	// Load environment variables
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	cfg := config.Load()

	switch os.Args[1] {
	case "import":
		requireArgs(3, "motif import <stream> <file>")
		runImport(cfg, os.Args[2], os.Args[3])
	case "streams":
		runStreams(cfg)
	case "prepare":
		requireArgs(2, "motif prepare <stream>")
		runPrepare(cfg, os.Args[2])
	case "generate":
		requireArgs(2, "motif generate <stream>")
		runGenerate(cfg, os.Args[2])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Motif - Symbolic Melody Generation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                    Show version")
	fmt.Println("  import <stream> <file>     Import a token-per-line corpus file")
	fmt.Println("  streams                    List stored streams")
	fmt.Println("  prepare <stream>           Build and store the vocabulary, report dataset shape")
	fmt.Println("  generate <stream>          Generate a melody timeline from a stored stream")
	fmt.Println("")
	fmt.Println("Configuration via MOTIF_DB, MOTIF_WINDOW, MOTIF_LENGTH, MOTIF_STEP, MOTIF_SEED")
}

func requireArgs(n int, form string) {
	if len(os.Args) < n+1 {
		log.Fatalf("usage: %s", form)
	}
}

func openStore(cfg *config.Config) *store.Store {
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store %s: %v", cfg.DBPath, err)
	}
	return s
}

// runImport reads a token-per-line corpus file, validates every token
// through the codec, and stores the stream.
func runImport(cfg *config.Config, name, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open corpus: %v", err)
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		if _, err := symbol.Decode(tok); err != nil {
			log.Fatalf("line %d: %v", line, err)
		}
		tokens = append(tokens, tok)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read corpus: %v", err)
	}

	s := openStore(cfg)
	defer s.Close()

	if err := s.SaveStream(name, tokens); err != nil {
		log.Fatalf("save stream: %v", err)
	}
	log.Printf("imported %d tokens into stream %q", len(tokens), name)
}

func runStreams(cfg *config.Config) {
	s := openStore(cfg)
	defer s.Close()

	names, err := s.ListStreams()
	if err != nil {
		log.Fatalf("list streams: %v", err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

// runPrepare builds the vocabulary and dataset for a stored stream
// and persists the vocabulary next to it.
func runPrepare(cfg *config.Config, name string) {
	s := openStore(cfg)
	defer s.Close()

	tokens, err := s.LoadStream(name)
	if err != nil {
		log.Fatalf("load stream: %v", err)
	}

	prep, err := pipeline.PrepareTokens(tokens, cfg.Window)
	if err != nil {
		log.Fatalf("prepare: %v", err)
	}

	if err := s.SaveVocab(name, prep.Vocab); err != nil {
		log.Fatalf("save vocabulary: %v", err)
	}

	log.Printf("stream %q: %d tokens, vocabulary %d, %d training pairs (window %d)",
		name, len(prep.Tokens), prep.Vocab.Size(), len(prep.Pairs), cfg.Window)
}

// runGenerate trains the built-in transition predictor on a stored
// stream and prints the generated timeline.
func runGenerate(cfg *config.Config, name string) {
	s := openStore(cfg)
	defer s.Close()

	tokens, err := s.LoadStream(name)
	if err != nil {
		log.Fatalf("load stream: %v", err)
	}
	v, err := s.LoadVocab(name)
	if err != nil {
		log.Fatalf("load vocabulary (run prepare first): %v", err)
	}

	ids, err := v.EncodeAll(tokens)
	if err != nil {
		log.Fatalf("encode stream: %v", err)
	}

	pred, err := predictor.Train(ids, v.Size())
	if err != nil {
		log.Fatalf("train predictor: %v", err)
	}

	genCfg := generate.Config{Window: cfg.Window, Length: cfg.Length, Seed: cfg.Seed}
	events, res, err := pipeline.Compose(ids, v, pred, genCfg, cfg.Step)
	if err != nil {
		log.Fatalf("compose: %v", err)
	}

	log.Printf("run %s: generated %d symbols", res.RunID, len(res.Tokens))
	for _, ev := range events {
		fmt.Printf("%.2f\t%s\n", ev.Offset, ev.Token)
	}
}
