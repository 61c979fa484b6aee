// Command llmquest plays LLM-generated text adventures. A content
// document is generated, selected from the data directory, or resumed
// from the last snapshot, decoded into a world graph, and played in a
// terminal UI.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llm-quest/llmquest/internal/config"
	"github.com/llm-quest/llmquest/internal/loader"
	"github.com/llm-quest/llmquest/internal/logger"
	"github.com/llm-quest/llmquest/internal/services"
	"github.com/llm-quest/llmquest/internal/storage"
	"github.com/llm-quest/llmquest/pkg/decoder"
	"github.com/llm-quest/llmquest/pkg/game"
)

// lastSnapshotName is the snapshot slot the UI saves into and the
// resume menu option reads from.
const lastSnapshotName = "last"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	log := logger.Setup(cfg)

	var store storage.DocumentStore
	if cfg.RedisAddr != "" {
		redisStore := storage.NewRedisStore(cfg.RedisAddr, storage.DefaultDocumentTTL, log)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := redisStore.WaitForConnection(ctx); err != nil {
			log.Warn("Document cache unavailable, continuing without it", "error", err)
		} else {
			store = redisStore
			defer func() { _ = redisStore.Close() }()
		}
		cancel()
	}

	llm := services.NewOllamaService(cfg.OllamaURL, cfg.ModelName, log)
	ld := loader.New(cfg.DataDir, llm, store, log)

	choice, code := chooseMethod()
	if choice == choiceQuit {
		return code
	}

	var (
		gd       *game.GameData
		document string
		player   *game.Player
	)

	switch choice {
	case choiceGenerate:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := llm.InitModel(ctx, cfg.ModelName); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to load game data: %v\n", err)
			return 3
		}
		fmt.Println("Generating a new world...")
		var err error
		gd, document, err = ld.Generate(ctx)
		if err != nil {
			return reportLoadError(err)
		}
		player = game.NewPlayer(gd)

	case choiceSelect:
		name, code := selectDocument(ld)
		if name == "" {
			return code
		}
		var err error
		gd, err = ld.Load(name)
		if err != nil {
			return reportLoadError(err)
		}
		document = name
		player = game.NewPlayer(gd)

	case choiceResume:
		snapshot, err := game.LoadSnapshot(lastSnapshotName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to load snapshot: %v\n", err)
			return 3
		}
		gd, err = ld.Load(snapshot.Document)
		if err != nil {
			return reportLoadError(err)
		}
		document = snapshot.Document
		player, err = game.Resume(gd, snapshot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to resume snapshot: %v\n", err)
			return 3
		}
	}

	p := tea.NewProgram(NewGameUI(player, document), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to run UI: %v\n", err)
		return 3
	}
	return 0
}

type menuChoice int

const (
	choiceQuit menuChoice = iota
	choiceGenerate
	choiceSelect
	choiceResume
)

func chooseMethod() (menuChoice, int) {
	fmt.Println("Choose a method for loading game data:")
	fmt.Println("`g`, `generate`")
	fmt.Println("`s`, `select`")
	fmt.Println("`r`, `resume`")
	fmt.Println("`q`, `quit`")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return choiceQuit, 0
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "generate", "g":
			return choiceGenerate, 0
		case "select", "s":
			return choiceSelect, 0
		case "resume", "r":
			return choiceResume, 0
		case "quit", "exit", "q":
			return choiceQuit, 0
		default:
			fmt.Println("Incorrect method.")
		}
	}
}

// selectDocument lists the documents in the data directory and reads a
// 1-based selection. An empty name carries the exit code.
func selectDocument(ld *loader.Loader) (string, int) {
	names, err := ld.ListDocuments()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to load game data: %v\n", err)
		return "", 3
	}

	fmt.Println("Select a game data file to load:")
	for i, name := range names {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	fmt.Print("> ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", 0
	}
	idx, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || idx < 1 || idx > len(names) {
		fmt.Fprintln(os.Stderr, "ERROR: Provide a valid index >= 1.")
		return "", 3
	}
	return names[idx-1], 0
}

// reportLoadError maps decode failures to the documented exit codes:
// 1 for malformed JSON text, 2 for an invalid content document, 3 for
// anything else.
func reportLoadError(err error) int {
	var contentErr *decoder.ContentError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &contentErr):
		fmt.Fprintf(os.Stderr, "ERROR: Incorrect game data: %v\n", err)
		return 2
	case errors.As(err, &syntaxErr):
		fmt.Fprintf(os.Stderr, "ERROR: Unable to parse JSON: %v\n", err)
		return 1
	default:
		fmt.Fprintf(os.Stderr, "ERROR: Failed to load game data: %v\n", err)
		return 3
	}
}
