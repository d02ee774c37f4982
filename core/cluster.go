package core

import "sort"

// member is one distinct value participating in clustering, tagged with
// which side(s) of the comparison contributed it.
type member struct {
	value        string
	inSolution   bool
	inSubmission bool
}

// cluster is a connected component of mutually similar members.
type cluster struct {
	values        []string
	hasSolution   bool
	hasSubmission bool
}

// unionFind is a plain disjoint-set structure with path compression.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		// Attach the larger root index under the smaller one so that
		// component roots are stable regardless of edge order.
		if ra > rb {
			ra, rb = rb, ra
		}
		u.parent[rb] = ra
	}
}

// clusterMembers partitions members into connected components, linking any
// pair whose similarity meets the threshold. Similarity is transitive here:
// a chain of near matches forms a single cluster.
func clusterMembers(members []member, threshold float64, sim SimilarityFunc) []cluster {
	uf := newUnionFind(len(members))
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if sim(members[i].value, members[j].value) >= threshold {
				uf.union(i, j)
			}
		}
	}

	byRoot := make(map[int]*cluster)
	var roots []int
	for i, m := range members {
		root := uf.find(i)
		c, ok := byRoot[root]
		if !ok {
			c = &cluster{}
			byRoot[root] = c
			roots = append(roots, root)
		}
		c.values = append(c.values, m.value)
		c.hasSolution = c.hasSolution || m.inSolution
		c.hasSubmission = c.hasSubmission || m.inSubmission
	}

	sort.Ints(roots)
	clusters := make([]cluster, 0, len(roots))
	for _, root := range roots {
		c := byRoot[root]
		sort.Strings(c.values)
		clusters = append(clusters, *c)
	}
	return clusters
}
