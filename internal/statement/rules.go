package statement

import (
	"accountcheck/internal/amount"
	"accountcheck/internal/models"
)

// TypeMapping binds a document-specific type token (e.g. "Gutschrift") to a
// transaction kind. Mappings are kept as an ordered list to match the rules
// file verbatim; lookup is by exact token.
type TypeMapping struct {
	Token string `yaml:"token"`
	Kind  string `yaml:"kind"`
}

// Rules holds everything the parser needs to know about one bank's statement
// layout. The values come from the rules file and are shared by all
// statements of an account.
type Rules struct {
	// RemoveWords are exact substrings deleted from the raw page text, in
	// list order. Order matters if one removed word is a substring of a
	// pattern checked later.
	RemoveWords []string `yaml:"remove_words"`
	// RemoveLinesWith drops any line containing one of these substrings.
	RemoveLinesWith []string `yaml:"remove_lines_with"`
	// StopWord is the exact line content marking the start of trailing
	// boilerplate. Everything at and after it is discarded; if it never
	// appears the statement parse fails.
	StopWord string `yaml:"stop_word"`
	// Types maps type tokens to transaction kinds.
	Types []TypeMapping `yaml:"types"`

	// Normalize rewrites locale-formatted amount tokens; nil selects the
	// German convention (thousands dots, decimal comma).
	Normalize amount.Normalizer `yaml:"-"`
}

// KindFor resolves a type token against the configured mappings.
func (r Rules) KindFor(token string) (models.TransactionKind, bool) {
	for _, m := range r.Types {
		if m.Token == token {
			kind, err := models.ParseKind(m.Kind)
			if err != nil {
				return "", false
			}
			return kind, true
		}
	}
	return "", false
}

// Validate checks that the rules are internally consistent before any
// document is parsed against them.
func (r Rules) Validate() error {
	for _, m := range r.Types {
		if _, err := models.ParseKind(m.Kind); err != nil {
			return err
		}
	}
	return nil
}
