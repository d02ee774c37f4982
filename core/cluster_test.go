package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubSimilarity treats values as identical only when equal, plus explicit
// edges, so threshold behavior can be pinned exactly.
func stubSimilarity(edges map[[2]string]float64) SimilarityFunc {
	return func(a, b string) float64 {
		if a == b {
			return 1.0
		}
		if s, ok := edges[[2]string{a, b}]; ok {
			return s
		}
		if s, ok := edges[[2]string{b, a}]; ok {
			return s
		}
		return 0.0
	}
}

func TestClusterMembersSingletons(t *testing.T) {
	members := []member{
		{value: "trypsin", inSolution: true},
		{value: "orbitrap", inSubmission: true},
	}
	clusters := clusterMembers(members, 0.8, stubSimilarity(nil))

	assert.Len(t, clusters, 2)
	assert.True(t, clusters[0].hasSolution)
	assert.False(t, clusters[0].hasSubmission)
	assert.False(t, clusters[1].hasSolution)
	assert.True(t, clusters[1].hasSubmission)
}

func TestClusterMembersTransitiveClosure(t *testing.T) {
	// A~B and B~C link all three even though A and C are dissimilar.
	sim := stubSimilarity(map[[2]string]float64{
		{"a", "b"}: 0.85,
		{"b", "c"}: 0.85,
		{"a", "c"}: 0.1,
	})
	members := []member{
		{value: "a", inSolution: true},
		{value: "b", inSubmission: true},
		{value: "c", inSubmission: true},
	}
	clusters := clusterMembers(members, 0.8, sim)

	assert.Len(t, clusters, 1)
	assert.Equal(t, []string{"a", "b", "c"}, clusters[0].values)
	assert.True(t, clusters[0].hasSolution)
	assert.True(t, clusters[0].hasSubmission)
}

func TestClusterMembersInclusiveThreshold(t *testing.T) {
	atBoundary := stubSimilarity(map[[2]string]float64{{"a", "b"}: 0.80})
	belowBoundary := stubSimilarity(map[[2]string]float64{{"a", "b"}: 0.79})
	members := []member{
		{value: "a", inSolution: true},
		{value: "b", inSubmission: true},
	}

	assert.Len(t, clusterMembers(members, 0.80, atBoundary), 1)
	assert.Len(t, clusterMembers(members, 0.80, belowBoundary), 2)
}

func TestClusterMembersBothSidesValue(t *testing.T) {
	members := []member{{value: "trypsin", inSolution: true, inSubmission: true}}
	clusters := clusterMembers(members, 0.8, stubSimilarity(nil))

	assert.Len(t, clusters, 1)
	assert.True(t, clusters[0].hasSolution)
	assert.True(t, clusters[0].hasSubmission)
}

func TestClusterMembersOrderIndependent(t *testing.T) {
	sim := stubSimilarity(map[[2]string]float64{
		{"a", "b"}: 0.9,
		{"c", "d"}: 0.9,
	})
	forward := []member{
		{value: "a", inSolution: true},
		{value: "b", inSubmission: true},
		{value: "c", inSolution: true},
		{value: "d", inSubmission: true},
	}
	reversed := []member{forward[3], forward[2], forward[1], forward[0]}

	got := clusterMembers(forward, 0.8, sim)
	gotReversed := clusterMembers(reversed, 0.8, sim)

	assert.Len(t, got, 2)
	assert.Len(t, gotReversed, 2)
	assert.ElementsMatch(t,
		[][]string{got[0].values, got[1].values},
		[][]string{gotReversed[0].values, gotReversed[1].values})
}
