package errors

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Assert that wrapping sentinel errors work as expected.
	sentinel := NewSentinel("test error")
	require.NotErrorIs(t, err, NewSentinel("test error"))
	wrapped := err.Wrap(sentinel)
	require.ErrorIs(t, wrapped, sentinel)

	// Ensure log values are coming through.
	group := err.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	source := group[sourceIdx]
	require.Contains(t, source.Value.String(), "annotatederror_test.go")
}

func TestWrap(t *testing.T) {
	sentinel := NewSentinel("completion failed")
	wrapped := Wrap(sentinel, "calculate impacts", slog.Int("attempt", 3))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "calculate impacts: completion failed", wrapped.Error())

	// The message of a double wrap includes the full chain.
	doubleWrapped := Wrap(wrapped, "decide")
	require.ErrorIs(t, doubleWrapped, sentinel)
	require.Equal(t, "decide: calculate impacts: completion failed", doubleWrapped.Error())
}
