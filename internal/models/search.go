package models

// Search document types as produced by the generator.
const (
	DocMemory  = "memory"
	DocSession = "session"
	DocNotes   = "notes"
)

// SearchDocument is one flattened, searchable text document with its
// source metadata.
type SearchDocument struct {
	File    string `json:"file"`
	Type    string `json:"type"`
	Content string `json:"content"`
}
