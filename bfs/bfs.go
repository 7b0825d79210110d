// Package bfs provides breadth-first search over the faces of a
// topology.Level, returning face-hop distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/subdiv/topology"
)

// queueItem pairs a face with its BFS depth.
type queueItem struct {
	face  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	level *topology.Level
	opts  Options
	queue []queueItem
	res   *Result
}

// Result holds the outcome of a BFS traversal:
//   - Order: faces visited, in visit sequence.
//   - Depth: per face, its distance in shared-edge hops (-1 if unreached).
//   - Parent: per face, its predecessor in the BFS tree (-1 if none).
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// BFS runs breadth-first search over the faces of l starting from start,
// applying any number of functional Options.
// Returns ErrLevelNil, ErrStartFaceNotFound or ErrNoAdjacency for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or any user-supplied hook error.
func BFS(l *topology.Level, start int, opts ...Option) (*Result, error) {
	o, err := resolve(l, opts)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= l.NumFaces() {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartFaceNotFound, start, l.NumFaces())
	}

	w := newWalker(l, o)
	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// Components labels every face of l with the index of its connected
// component, numbering components in order of their lowest face. Filters
// passed in opts restrict which edges connect faces; MaxDepth is ignored.
func Components(l *topology.Level, opts ...Option) ([]int, int, error) {
	o, err := resolve(l, opts)
	if err != nil {
		return nil, 0, err
	}
	o.MaxDepth = 0

	n := l.NumFaces()
	labels := make([]int, n)
	w := newWalker(l, o)
	count := 0
	for f := 0; f < n; f++ {
		if w.res.Depth[f] >= 0 {
			continue
		}
		first := len(w.res.Order)
		w.enqueue(f, 0, -1)
		if err := w.loop(); err != nil {
			return nil, 0, err
		}
		for _, g := range w.res.Order[first:] {
			labels[g] = count
		}
		count++
	}
	return labels, count, nil
}

// resolve validates l and builds options, catching invalid ones immediately.
func resolve(l *topology.Level, opts []Option) (Options, error) {
	if l == nil {
		return Options{}, ErrLevelNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if l.NumFaces() > 0 && l.FaceEdges(0) == nil {
		return Options{}, ErrNoAdjacency
	}
	return o, nil
}

func newWalker(l *topology.Level, o Options) *walker {
	n := l.NumFaces()
	w := &walker{
		level: l,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for f := 0; f < n; f++ {
		w.res.Depth[f] = -1
		w.res.Parent[f] = -1
	}
	return w
}

// enqueue marks f reached at depth d from parent and adds it to the queue.
func (w *walker) enqueue(f, d, parent int) {
	w.res.Depth[f] = d
	w.res.Parent[f] = parent
	w.queue = append(w.queue, queueItem{face: f, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.face)
		if err := w.opts.OnVisit(item.face, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at face %d: %w", item.face, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors crosses every edge of the face, applying filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.level.FaceEdges(item.face) {
		for _, nbr := range w.level.EdgeFaces(e) {
			if nbr == item.face || w.res.Depth[nbr] >= 0 {
				continue
			}
			if !w.opts.FilterNeighbor(item.face, nbr, e) {
				continue
			}
			w.enqueue(nbr, next, item.face)
		}
	}
}

// PathTo reconstructs the faces from the start face to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("bfs: no path to face %d", dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}
	return path, nil
}
