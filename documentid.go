package printdoc

import "github.com/google/uuid"

// NewDocumentID returns a time-ordered identifier for a generated document.
func NewDocumentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
