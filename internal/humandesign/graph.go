package humandesign

// centerGraph partitions defined centers into connected groups with a
// disjoint-set forest, using path compression and union by rank. Two
// centers are connected iff a chain of active channels joins them.
type centerGraph struct {
	parent map[Center]Center
	rank   map[Center]int
}

// newCenterGraph builds the graph spanned by the given active channels.
func newCenterGraph(channels []Channel) *centerGraph {
	g := &centerGraph{
		parent: make(map[Center]Center),
		rank:   make(map[Center]int),
	}
	for _, ch := range channels {
		a, b := ch.Centers()
		g.union(a, b)
	}
	return g
}

func (g *centerGraph) add(c Center) {
	if _, ok := g.parent[c]; ok {
		return
	}
	g.parent[c] = c
	g.rank[c] = 0
}

func (g *centerGraph) find(c Center) Center {
	if _, ok := g.parent[c]; !ok {
		g.add(c)
		return c
	}
	if g.parent[c] != c {
		g.parent[c] = g.find(g.parent[c])
	}
	return g.parent[c]
}

func (g *centerGraph) union(a, b Center) {
	ra, rb := g.find(a), g.find(b)
	if ra == rb {
		return
	}
	switch {
	case g.rank[ra] < g.rank[rb]:
		g.parent[ra] = rb
	case g.rank[ra] > g.rank[rb]:
		g.parent[rb] = ra
	default:
		g.parent[rb] = ra
		g.rank[ra]++
	}
}

// defined reports whether c has at least one active channel.
func (g *centerGraph) defined(c Center) bool {
	_, ok := g.parent[c]
	return ok
}

// reaches reports whether a path of active channels joins a and b. A
// center without channels reaches nothing, not even itself.
func (g *centerGraph) reaches(a, b Center) bool {
	if !g.defined(a) || !g.defined(b) {
		return false
	}
	return g.find(a) == g.find(b)
}

// components returns the number of separate groups of defined centers.
func (g *centerGraph) components() int {
	roots := make(map[Center]struct{})
	for c := range g.parent {
		roots[g.find(c)] = struct{}{}
	}
	return len(roots)
}
