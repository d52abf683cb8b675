package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvroute/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrRootNotFound is returned when the root is not known to the graph.
	ErrRootNotFound = errors.New("bfs: root node not found")
)

// Tree is a breadth-first spanning tree of the nodes reachable from Root.
type Tree struct {
	Root   string
	Order  []string          // visit sequence, Root first
	Depth  map[string]int    // hops from Root
	Parent map[string]string // tree predecessor; Root has none
}

// Walk builds the fewest-hop tree rooted at root. The root may be any known
// node, including an unregistered edge target. ctx is checked once per
// dequeued node.
func Walk[A any](ctx context.Context, g *core.Graph[A], root string) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Known(root) {
		return nil, ErrRootNotFound
	}

	n := g.NodeCount()
	t := &Tree{
		Root:   root,
		Order:  make([]string, 0, n),
		Depth:  map[string]int{root: 0},
		Parent: make(map[string]string, n),
	}

	// Order doubles as the queue: everything behind head is still to expand.
	t.Order = append(t.Order, root)
	for head := 0; head < len(t.Order); head++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		u := t.Order[head]
		for _, v := range g.Neighbors(u) {
			if _, seen := t.Depth[v]; seen {
				continue
			}
			t.Depth[v] = t.Depth[u] + 1
			t.Parent[v] = u
			t.Order = append(t.Order, v)
		}
	}

	return t, nil
}

// Reached reports whether id is in the tree.
func (t *Tree) Reached(id string) bool {
	_, ok := t.Depth[id]

	return ok
}

// PathTo returns the hop path Root→…→id, or nil when id was not reached.
func (t *Tree) PathTo(id string) []string {
	d, ok := t.Depth[id]
	if !ok {
		return nil
	}
	path := make([]string, d+1)
	for i, cur := d, id; i >= 0; i-- {
		path[i] = cur
		cur = t.Parent[cur]
	}

	return path
}
