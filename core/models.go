package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Assessment IDs are derived from content hashing so that re-ingesting the
// same catalog produces the same IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Tri-state feature flags used by catalog records. Catalog pages rarely
// state these explicitly, so Unknown is the common case.
const (
	FlagYes     = "Yes"
	FlagNo      = "No"
	FlagUnknown = "Unknown"
)

// Assessment represents a single product entry from the assessment catalog.
// It is created once at ingestion and read-only afterwards.
type Assessment struct {
	Id              ID
	Name            string
	URL             string
	Description     string
	Duration        string // raw catalog text, e.g. "30 minutes"
	DurationMinutes int    // parsed from Duration at ingestion; 0 = unparseable
	RemoteTesting   string // FlagYes, FlagNo or FlagUnknown
	AdaptiveIRT     string
	TestType        string
	Vector          []float32 // embedding for semantic search (populated by the indexer)
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// SearchResult pairs an assessment with its similarity score.
type SearchResult struct {
	Assessment *Assessment
	Score      float32
}
