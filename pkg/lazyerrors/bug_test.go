package lazyerrors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMustBugfPanicsUnderTests(t *testing.T) {
	require.PanicsWithValue(t,
		"invalid argument: 42",
		func() { _ = MustBugf("invalid argument: %d", 42) },
	)
}

func TestMustPanicFormats(t *testing.T) {
	require.PanicsWithValue(t,
		"cursor misuse: tier forward below bidirectional",
		func() { MustPanic("cursor misuse: tier %s below %s", "forward", "bidirectional") },
	)
}
