// Package loader sources content documents: selecting bundled ones
// from the data directory, or generating new ones with the LLM and
// persisting them for later play.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/llm-quest/llmquest/internal/services"
	"github.com/llm-quest/llmquest/internal/storage"
	"github.com/llm-quest/llmquest/pkg/chat"
	"github.com/llm-quest/llmquest/pkg/decoder"
	"github.com/llm-quest/llmquest/pkg/game"
)

const generatedSubdir = "generated"

// Loader sources content documents from the data directory and from
// the LLM. The document store is optional; when nil, generated
// documents are written to disk only.
type Loader struct {
	dataDir string
	llm     services.LLMService
	store   storage.DocumentStore
	logger  *slog.Logger
}

func New(dataDir string, llm services.LLMService, store storage.DocumentStore, logger *slog.Logger) *Loader {
	if dataDir == "" {
		dataDir = "./data"
	}
	return &Loader{
		dataDir: dataDir,
		llm:     llm,
		store:   store,
		logger:  logger,
	}
}

// ListDocuments returns the filenames of all .json documents under the
// data directory (including previously generated ones), sorted.
func (l *Loader) ListDocuments() ([]string, error) {
	var names []string

	err := filepath.WalkDir(l.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		rel, err := filepath.Rel(l.dataDir, path)
		if err != nil {
			return nil
		}
		names = append(names, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("there are no .json documents in %s", l.dataDir)
	}

	sort.Strings(names)
	return names, nil
}

// Load reads and decodes the named document from the data directory.
func (l *Loader) Load(name string) (*game.GameData, error) {
	path := filepath.Join(l.dataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document not found: %s", name)
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return decoder.Decode(data)
}

// Generate asks the LLM for a fresh document, extracts the JSON object
// from the raw output, decodes it, and on success persists it under a
// new ID. Returns the decoded world and the filename it was saved as.
func (l *Loader) Generate(ctx context.Context) (*game.GameData, string, error) {
	resp, err := l.llm.Chat(ctx, []chat.Message{
		{Role: chat.RoleSystem, Content: systemPrompt},
		{Role: chat.RoleUser, Content: userPrompt},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate document: %w", err)
	}

	raw, err := ExtractJSON(resp.Message)
	if err != nil {
		return nil, "", err
	}

	gd, err := decoder.Decode(raw)
	if err != nil {
		return nil, "", err
	}

	id := uuid.New()
	name, err := l.saveGenerated(ctx, id, raw)
	if err != nil {
		// The world decoded fine; losing the copy on disk is not
		// worth failing the whole session over.
		l.logger.Warn("Failed to persist generated document", "id", id, "error", err)
		return gd, "", nil
	}

	l.logger.Info("Generated document saved", "id", id, "name", name)
	return gd, name, nil
}

func (l *Loader) saveGenerated(ctx context.Context, id uuid.UUID, raw []byte) (string, error) {
	dir := filepath.Join(l.dataDir, generatedSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create generated dir: %w", err)
	}

	name := filepath.Join(generatedSubdir, id.String()+".json")
	if err := os.WriteFile(filepath.Join(l.dataDir, name), raw, 0644); err != nil {
		return "", fmt.Errorf("failed to write generated document: %w", err)
	}

	if l.store != nil {
		if err := l.store.SaveDocument(ctx, id, raw); err != nil {
			l.logger.Warn("Failed to cache generated document", "id", id, "error", err)
		}
	}

	return name, nil
}
