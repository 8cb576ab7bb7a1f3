// Package parsererror defines the error types surfaced by statement parsing.
// All of them carry the source file identity so a failing document in a batch
// can be pinpointed from the error alone.
package parsererror

import "fmt"

// StopWordError reports that the configured stop word never appeared as an
// exact line in the cleaned document text. This means the parse rules are
// mismatched with the document and the whole statement parse is aborted.
type StopWordError struct {
	FilePath string
	StopWord string
}

func (e *StopWordError) Error() string {
	return fmt.Sprintf("stop word %q not found in %s: trailing boilerplate cannot be located", e.StopWord, e.FilePath)
}

// IncompleteRecordError reports a record-start line that matched a type token
// but is missing its date or amount. A malformed record start indicates broken
// configuration rather than noise, so it is fatal for the statement.
type IncompleteRecordError struct {
	FilePath string
	Field    string
	Target   string
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("incomplete record in %s: missing %s (target %q)", e.FilePath, e.Field, e.Target)
}

// ParseError wraps a lower-level failure during statement parsing.
type ParseError struct {
	FilePath string
	Stage    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s failed at %s: %v", e.FilePath, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractionError reports that page text could not be extracted from a
// document before parsing even started.
type ExtractionError struct {
	FilePath string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed for %s: %v", e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
