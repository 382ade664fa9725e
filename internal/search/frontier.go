package search

import "container/heap"

// frontier is the ordered set of unvisited nodes. It is implemented
// as a binary heap (container/heap) with each node tracking its own
// heap index, which gives the O(log n) insert, erase, and
// pop-minimum spec §9's DESIGN NOTES call for: erase is
// heap.Remove(&f, node.heapIndex).
type frontier struct {
	items []*BoardNode
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool { return f.items[i].Less(f.items[j]) }

func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.items[i].heapIndex = i
	f.items[j].heapIndex = j
}

func (f *frontier) Push(x any) {
	n := x.(*BoardNode)
	n.heapIndex = len(f.items)
	f.items = append(f.items, n)
}

func (f *frontier) Pop() any {
	old := f.items
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	f.items = old[:last]
	n.heapIndex = -1
	return n
}

// push enqueues n in the frontier.
func (f *frontier) push(n *BoardNode) { heap.Push(f, n) }

// popMin removes and returns the cheapest node, or nil if empty.
func (f *frontier) popMin() *BoardNode {
	if f.Len() == 0 {
		return nil
	}
	return heap.Pop(f).(*BoardNode)
}

// remove erases n from the frontier if it is currently queued.
func (f *frontier) remove(n *BoardNode) {
	if n.heapIndex < 0 {
		return
	}
	heap.Remove(f, n.heapIndex)
}
