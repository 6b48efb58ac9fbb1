package flow_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"rebel/flow"
	"rebel/prim"
)

func TestRangeInclusive(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(flow.Range(1, 5, 1)))
	require.Equal(t, []int{0, 3, 6, 9}, slices.Collect(flow.Range(0, 10, 3)))
	require.Empty(t, slices.Collect(flow.Range(5, 1, 1)))
	require.Equal(t, []prim.Int{-2, -1, 0}, slices.Collect(flow.Range[prim.Int](-2, 0, 1)))
}

func TestRangeNests(t *testing.T) {
	var pairs [][2]int
	for i := range flow.Range(1, 2, 1) {
		for j := range flow.Range(1, 2, 1) {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	require.Equal(t, [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, pairs)
}

func TestRangeZeroStepStopsOnBreak(t *testing.T) {
	n := 0
	for i := range flow.Range(0, 1, 0) {
		require.Equal(t, 0, i)
		n++
		if n == 10 {
			break
		}
	}
	require.Equal(t, 10, n)
}

func TestWhileUntil(t *testing.T) {
	x := 0
	for range flow.While(func() bool { return x < 3 }) {
		x++
	}
	require.Equal(t, 3, x)

	evals := 0
	y := 0
	for range flow.Until(func() bool { evals++; return y >= 4 }) {
		y++
	}
	require.Equal(t, 4, y)
	require.Equal(t, 5, evals, "condition is tested before every iteration")

	ran := false
	for range flow.Loop(func() bool { return false }) {
		ran = true
	}
	require.False(t, ran, "pre-test loop may run zero times")
}

func TestForeverAndFor(t *testing.T) {
	var seen []int
	for n := range flow.Forever() {
		if n == 3 {
			break
		}
		seen = append(seen, n)
	}
	require.Equal(t, []int{0, 1, 2}, seen)

	var order []string
	i := 0
	for range flow.For(
		func() { order = append(order, "init"); i = 0 },
		func() bool { order = append(order, "cond"); return i < 2 },
		func() { order = append(order, "incr"); i++ },
	) {
		order = append(order, "body")
	}
	require.Equal(t, []string{"init", "cond", "body", "incr", "cond", "body", "incr", "cond"}, order)
}

type cell struct{ N int }

func TestForEachVisitsInOrderByPointer(t *testing.T) {
	cells := [4]cell{{1}, {2}, {3}, {4}}
	var visited []int
	for p := range flow.ForEach(cells[:]) {
		visited = append(visited, p.N)
		p.N *= 10
	}
	require.Equal(t, []int{1, 2, 3, 4}, visited)
	require.Equal(t, [4]cell{{10}, {20}, {30}, {40}}, cells)

	s := []int{1, 2, 3}
	count := 0
	for range flow.ForEach(s) {
		s = append(s, 0)
		count++
	}
	require.Equal(t, 3, count, "count is fixed when the loop starts")
}

func TestForIn(t *testing.T) {
	vals := []prim.Real{0.5, 1.5}
	var idx []int
	for i, p := range flow.ForIn[prim.Real](vals) {
		idx = append(idx, i)
		*p += 1
	}
	require.Equal(t, []int{0, 1}, idx)
	require.Equal(t, []prim.Real{1.5, 2.5}, vals)
}

func TestMap(t *testing.T) {
	var got []string
	flow.Map(func(s string) { got = append(got, s+"!") }, []string{"a", "b", "c"})
	require.Equal(t, []string{"a!", "b!", "c!"}, got)

	calls := 0
	flow.Map(func(int) { calls++ }, nil)
	require.Zero(t, calls)
}
