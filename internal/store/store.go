// Package store loads the statement rules file: parse rules plus the ordered
// category definitions. The file is plain YAML with explicit lists of pairs —
// never maps — wherever order carries meaning, because both the type tokens
// and the categorizer's first-match-wins semantics depend on it.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"accountcheck/internal/logging"
	"accountcheck/internal/models"
	"accountcheck/internal/statement"
)

// Ruleset is the full content of a rules file.
type Ruleset struct {
	Parse      statement.Rules         `yaml:"parse"`
	Categories []models.CategoryConfig `yaml:"categories"`
}

// RuleStore manages loading of rules files.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for the given rules file path. An empty path
// falls back to "rules.yaml" resolved against the standard locations.
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{RulesFile: rulesFile, logger: logger}
}

// FindRulesFile looks for a rules file in standard locations: the path as
// given, ./config/, and ~/.config/account-check/.
func (s *RuleStore) FindRulesFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "account-check", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads and validates the rules file.
func (s *RuleStore) Load() (*Ruleset, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindRulesFile(filename)
	if err != nil {
		return nil, fmt.Errorf("rules file %s not found: %w", filename, err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	ruleset, err := ParseRuleset(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(ruleset.Categories)},
	).Debug("Loaded rules file")

	return ruleset, nil
}

// ParseRuleset unmarshals and validates raw rules YAML.
func ParseRuleset(data []byte) (*Ruleset, error) {
	var ruleset Ruleset
	if err := yaml.Unmarshal(data, &ruleset); err != nil {
		return nil, err
	}
	if err := validate(&ruleset); err != nil {
		return nil, err
	}
	return &ruleset, nil
}

func validate(ruleset *Ruleset) error {
	if ruleset.Parse.StopWord == "" {
		return fmt.Errorf("parse.stop_word must be set")
	}
	if len(ruleset.Parse.Types) == 0 {
		return fmt.Errorf("parse.types must declare at least one type token")
	}
	if err := ruleset.Parse.Validate(); err != nil {
		return err
	}
	for _, category := range ruleset.Categories {
		if category.Name == "" {
			return fmt.Errorf("category with empty name")
		}
	}
	return nil
}
