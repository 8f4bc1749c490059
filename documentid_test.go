package printdoc

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewDocumentID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		id := NewDocumentID()

		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("NewDocumentID() = %q, not a UUID: %v", id, err)
		}
		if parsed.Version() != 7 {
			t.Errorf("version = %d, want 7", parsed.Version())
		}
		if seen[id] {
			t.Fatalf("duplicate document ID %q", id)
		}
		seen[id] = true
	}
}
