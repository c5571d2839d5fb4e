// File: connectivity.go
// Role: breadth-first fragment labeling.
//
// Complexity:
//   - Time O(N + B), Memory O(N) for the queue and labels.
package molecule

// queueItem pairs an atom index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state over an adjacency snapshot.
type walker struct {
	adj     [][]int
	queue   []queueItem
	label   []int // fragment id per atom, -1 = unvisited
	current int
}

// Components labels every atom with the index of its fragment. Fragments are
// numbered in order of their lowest atom index. Returns the labels and the
// number of fragments (0 for an empty molecule).
func (m *Mol) Components() ([]int, int) {
	m.mu.RLock()
	adj := make([][]int, len(m.adj))
	for i, nb := range m.adj {
		adj[i] = append([]int(nil), nb...)
	}
	m.mu.RUnlock()

	w := &walker{adj: adj, label: make([]int, len(adj))}
	for i := range w.label {
		w.label[i] = -1
	}
	for i := range adj {
		if w.label[i] >= 0 {
			continue
		}
		w.enqueue(i, 0)
		w.loop()
		w.current++
	}

	return w.label, w.current
}

// Connected reports whether the molecule has at most one fragment.
func (m *Mol) Connected() bool {
	_, n := m.Components()

	return n <= 1
}

// enqueue labels idx with the current fragment and adds it to the queue.
func (w *walker) enqueue(idx, depth int) {
	w.label[idx] = w.current
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth})
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		for _, nb := range w.adj[item.idx] {
			if w.label[nb] < 0 {
				w.enqueue(nb, item.depth+1)
			}
		}
	}
}
