package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"dfs", DepthFirst{}},
		{"DFS", DepthFirst{}},
		{" depth-first ", DepthFirst{}},
		{"depth_first", DepthFirst{}},
		{"bfs", BreadthFirst{}},
		{"Breadth-First", BreadthFirst{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithm_Invalid(t *testing.T) {
	for _, in := range []string{"", "astar", "ucs", "d f s"} {
		_, err := ParseAlgorithm(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrInvalidAlgorithm)

		var ae *InvalidAlgorithmError
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, in, ae.Name)
	}
}

func TestInvalidAlgorithmError_Message(t *testing.T) {
	err := &InvalidAlgorithmError{Name: "astar"}
	assert.Equal(t, `invalid algorithm "astar" (expected one of: dfs, bfs)`, err.Error())
	assert.Equal(t, "invalid algorithm", (&InvalidAlgorithmError{}).Error())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"dfs", "bfs"}, Names())
}

func TestFrontierDiscipline(t *testing.T) {
	s := DepthFirst{}.newFrontier(0)
	q := BreadthFirst{}.newFrontier(0)
	for _, id := range []int{1, 2, 3} {
		s.push(id)
		q.push(id)
	}

	var fromStack, fromQueue []int
	for s.len() > 0 {
		fromStack = append(fromStack, s.pop())
	}
	for q.len() > 0 {
		fromQueue = append(fromQueue, q.pop())
	}
	assert.Equal(t, []int{3, 2, 1}, fromStack)
	assert.Equal(t, []int{1, 2, 3}, fromQueue)
}

func TestQueue_ReusesAfterDrain(t *testing.T) {
	q := &queue{}
	q.push(1)
	assert.Equal(t, 1, q.pop())
	q.push(2)
	q.push(3)
	assert.Equal(t, 2, q.len())
	assert.Equal(t, 2, q.pop())
	assert.Equal(t, 3, q.pop())
	assert.Zero(t, q.len())
}
