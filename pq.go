package navgrid

import "container/heap"

// PriorityQueueItem is one open-set entry. Sequence records insertion order so
// that equal scores come out first-seen first.
type PriorityQueueItem struct {
	NodeIndex    int
	Score        float64
	Sequence     uint64
	IndexInQueue int
}

type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].Score != queue[j].Score {
		return queue[i].Score < queue[j].Score
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// openSet is the frontier: a heap ordered by score then insertion, plus a
// coordinate index so each coordinate appears at most once.
type openSet struct {
	queue    PriorityQueue
	byCoord  map[Coord]*PriorityQueueItem
	sequence uint64
}

func newOpenSet() *openSet {
	set := &openSet{
		queue:   make(PriorityQueue, 0),
		byCoord: make(map[Coord]*PriorityQueueItem),
	}
	heap.Init(&set.queue)
	return set
}

func (set *openSet) Len() int { return set.queue.Len() }

func (set *openSet) push(coord Coord, nodeIndex int, score float64) {
	item := &PriorityQueueItem{NodeIndex: nodeIndex, Score: score, Sequence: set.sequence}
	set.sequence++
	heap.Push(&set.queue, item)
	set.byCoord[coord] = item
}

// popMin removes and returns the arena index of the lowest scored entry.
func (set *openSet) popMin(nodes []Node) int {
	item := heap.Pop(&set.queue).(*PriorityQueueItem)
	delete(set.byCoord, nodes[item.NodeIndex].Coord)
	return item.NodeIndex
}

func (set *openSet) find(coord Coord) (*PriorityQueueItem, bool) {
	item, ok := set.byCoord[coord]
	return item, ok
}

func (set *openSet) remove(coord Coord) {
	item, ok := set.byCoord[coord]
	if !ok {
		return
	}
	heap.Remove(&set.queue, item.IndexInQueue)
	delete(set.byCoord, coord)
}

func (set *openSet) coords() map[Coord]bool {
	m := make(map[Coord]bool, len(set.byCoord))
	for c := range set.byCoord {
		m[c] = true
	}
	return m
}
