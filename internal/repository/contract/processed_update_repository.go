package contract

import "context"

// ProcessedUpdateRepository remembers which chat updates were already handled.
type ProcessedUpdateRepository interface {
	// MarkProcessed records updateID and reports whether this call was the first to do so.
	MarkProcessed(ctx context.Context, updateID int) (bool, error)
}
