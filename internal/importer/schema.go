package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// SchemaVersion is written by Export and the only version Validate accepts.
const SchemaVersion = 1

// BackupSchema is the top-level JSON structure for a LifeTrack backup.
type BackupSchema struct {
	Version    int            `json:"version"`
	ExportedAt string         `json:"exported_at,omitempty"`
	Profile    *ProfileImport `json:"profile,omitempty"`
	Tasks      []TaskImport   `json:"tasks"`
	Entries    []EntryImport  `json:"entries"`
}

// ProfileImport holds the profile fields; empty strings are kept as empty.
type ProfileImport struct {
	Nickname string `json:"nickname,omitempty"`
	Age      string `json:"age,omitempty"`
	FavQuote string `json:"fav_quote,omitempty"`
	Goal     string `json:"goal,omitempty"`
}

// TaskImport defines a task or ritual in the backup file.
type TaskImport struct {
	Title     string `json:"title"`
	Priority  string `json:"priority,omitempty"`
	Status    string `json:"status,omitempty"`
	Date      string `json:"date"`
	IsDaily   bool   `json:"is_daily,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// EntryImport defines a ledger transaction in the backup file.
type EntryImport struct {
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

// LoadBackup reads and parses a backup JSON file.
func LoadBackup(path string) (*BackupSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseBackup(f)
}

// ParseBackup decodes a backup, rejecting unknown fields.
func ParseBackup(r io.Reader) (*BackupSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var schema BackupSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &schema, nil
}

// Write encodes the backup as indented JSON.
func Write(w io.Writer, schema *BackupSchema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}
