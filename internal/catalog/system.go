package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// System defines the public contract for catalog operations.
type System interface {
	Handler() *Handler

	Questions() []QuestionDef
	Len() int
	At(index int) (*QuestionDef, error)
}

type system struct {
	questions []QuestionDef
	logger    *slog.Logger
}

// New creates a catalog system. When path is empty the built-in default
// questionnaire is used; otherwise the TOML file at path replaces it.
// The loaded catalog is validated once and never mutated.
func New(path string, logger *slog.Logger) (System, error) {
	questions := Default()

	if path != "" {
		loaded, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
		questions = loaded
		logger.Info("catalog loaded from file", "path", path, "questions", len(questions))
	}

	if err := validate(questions); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	return &system{
		questions: questions,
		logger:    logger.With("system", "catalog"),
	}, nil
}

// Handler returns the HTTP handler for catalog endpoints.
func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Questions() []QuestionDef {
	return s.questions
}

func (s *system) Len() int {
	return len(s.questions)
}

func (s *system) At(index int) (*QuestionDef, error) {
	if index < 0 || index >= len(s.questions) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return &s.questions[index], nil
}

type catalogFile struct {
	Questions []QuestionDef `toml:"questions"`
}

func load(path string) ([]QuestionDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return file.Questions, nil
}

func validate(questions []QuestionDef) error {
	if len(questions) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" || q.Prompt == "" {
			return fmt.Errorf("question %q: id and prompt are required", q.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, q.ID)
		}
		seen[q.ID] = true

		if q.Kind == KindChoice && len(q.Options) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingOptions, q.ID)
		}
	}
	return nil
}
