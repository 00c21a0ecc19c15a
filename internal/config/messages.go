package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// Messages is the caller-facing error message catalog, read once from
// messages.env at startup and immutable afterwards.
type Messages struct {
	byKind map[string]string
}

// NewMessages builds a catalog from an in-memory map. Kinds are matched
// case-insensitively.
func NewMessages(kv map[string]string) *Messages {
	byKind := make(map[string]string, len(kv))
	for k, v := range kv {
		byKind[strings.ToLower(k)] = v
	}
	return &Messages{byKind: byKind}
}

// LoadMessages reads the message catalog from the given env-format file.
func LoadMessages(path string) (*Messages, error) {
	kv, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("could not read messages file at %s: %w", path, err)
	}

	byKind := make(map[string]string, len(kv))
	for k, v := range kv {
		byKind[strings.ToLower(k)] = v
	}
	return &Messages{byKind: byKind}, nil
}

// For returns the message for the given kind (case-insensitive), or the
// kind itself when the catalog has no entry for it.
func (m *Messages) For(kind string) string {
	if msg, ok := m.byKind[strings.ToLower(kind)]; ok {
		return msg
	}
	return kind
}
