package ai

import (
	"context"

	"github.com/vheikkine/franchiselab/internal/errors"
)

// OfflineCompleter never reaches the network. Every call fails with
// [ErrCompletionFailed], which steers callers onto their deterministic
// fallbacks. Used for local development and the offline CLI mode.
type OfflineCompleter struct{}

// Complete implements Completer.
func (OfflineCompleter) Complete(_ context.Context, _ string, _ string) (string, error) {
	return "", errors.Wrap(ErrCompletionFailed, "completion service disabled")
}
