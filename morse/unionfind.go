// SPDX-License-Identifier: MIT

package morse

// disjointSet is an array-backed union-find with path compression and
// union by size.
type disjointSet struct {
	parent []int // -1 marks a root
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1
		size[i] = 1
	}

	return &disjointSet{parent: parent, size: size}
}

// find returns the root of the set containing x, compressing the path.
func (d *disjointSet) find(x int) int {
	root := x
	for d.parent[root] != -1 {
		root = d.parent[root]
	}
	for d.parent[x] != -1 {
		x, d.parent[x] = d.parent[x], root
	}

	return root
}

// union attaches the smaller tree under the larger and returns the new root.
func (d *disjointSet) union(x, y int) int {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return rx
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]

	return rx
}

// pointedUnionFind keeps the representative of the left-hand side of a
// union canonical, whichever root the underlying disjointSet keeps.
// The merger always passes the surviving basin as x.
type pointedUnionFind struct {
	sets  *disjointSet
	reprs []int // root → canonical representative
}

func newPointedUnionFind(n int) *pointedUnionFind {
	reprs := make([]int, n)
	for i := range reprs {
		reprs[i] = i
	}

	return &pointedUnionFind{sets: newDisjointSet(n), reprs: reprs}
}

// find returns the canonical representative of x's partition.
func (p *pointedUnionFind) find(x int) int {
	return p.reprs[p.sets.find(x)]
}

// union merges the partitions of x and y; x is privileged.
func (p *pointedUnionFind) union(x, y int) {
	outer := p.find(x)
	root := p.sets.union(x, y)
	p.reprs[root] = outer
}
