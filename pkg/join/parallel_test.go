package join_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authzed/lazyseq/pkg/cursor"
	"github.com/authzed/lazyseq/pkg/cursor/cursortest"
	"github.com/authzed/lazyseq/pkg/join"
)

func collectJoined(a []int, b []row, opts ...join.Option) []string {
	return join.Where(
		cursor.FromSlice(a),
		cursor.FromSlice(b),
		func(x int) int { return x },
		func(r row) int { return r.key },
		pairOf,
		opts...,
	).Collect()
}

func TestParallelMatchesSerial(t *testing.T) {
	// A sparse left side against a large right side: long runs of misses
	// between matches are what the chunked scan exists for.
	var a []int
	for i := 0; i < 500; i += 7 {
		a = append(a, i)
	}
	var b []row
	for i := 0; i < 500; i += 3 {
		b = append(b, row{i, fmt.Sprintf("b%d", i)})
	}

	serial := collectJoined(a, b)
	parallel := collectJoined(a, b, join.WithPolicy(join.PolicyParallel))

	require.NotEmpty(t, serial)
	require.Equal(t, serial, parallel,
		"the earliest match across all chunks is committed each scan")
}

func TestParallelFollowsBDuplicates(t *testing.T) {
	a := []int{1, 2, 2, 3}
	b := []row{{1, "x"}, {2, "y"}, {2, "z"}, {4, "w"}}

	require.Equal(t,
		collectJoined(a, b),
		collectJoined(a, b, join.WithPolicy(join.PolicyParallel)),
	)
}

func TestParallelWorkerCap(t *testing.T) {
	a := []int{1, 3, 5, 7, 9, 11}
	b := []row{{3, "x"}, {7, "y"}, {11, "z"}}

	for _, workers := range []int{1, 2, 16} {
		t.Run(fmt.Sprintf("max workers %d", workers), func(t *testing.T) {
			got := collectJoined(a, b,
				join.WithPolicy(join.PolicyParallel),
				join.WithMaxWorkers(workers),
			)
			require.Equal(t, []string{"(3,x)", "(7,y)", "(11,z)"}, got)
		})
	}
}

func TestParallelEmptyInputs(t *testing.T) {
	opts := []join.Option{join.WithPolicy(join.PolicyParallel)}

	require.Empty(t, collectJoined(nil, []row{{1, "x"}}, opts...))
	require.Empty(t, collectJoined([]int{1}, nil, opts...))
	require.Empty(t, collectJoined([]int{2, 4}, []row{{1, "x"}, {3, "y"}}, opts...))
}

func TestParallelFallsBackOnForwardA(t *testing.T) {
	// A forward-only left side cannot be chunked, so the policy quietly
	// degrades to the serial scan.
	a := cursortest.Forward(cursor.FromSlice([]int{1, 2, 3}))
	b := rows(row{1, "x"}, row{2, "y"}, row{2, "z"}, row{4, "w"})

	v := join.Where(a, b,
		func(x int) int { return x },
		func(r row) int { return r.key },
		pairOf,
		join.WithPolicy(join.PolicyParallel),
	)
	require.Equal(t, []string{"(1,x)", "(2,y)", "(2,z)"}, v.Collect())
}
