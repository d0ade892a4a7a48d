package generation

import (
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"
)

// frontier holds visited cells that may still have unvisited neighbors.
type frontier interface {
	push(id int)
	// pop removes the next cell to resume from.
	pop() int
	empty() bool
}

// fifo resumes from the oldest pushed cell.
type fifo struct {
	q *queue.Queue[int]
}

func newFIFO() *fifo {
	return &fifo{q: queue.New[int]()}
}

func (f *fifo) push(id int) { f.q.Enqueue(id) }
func (f *fifo) pop() int    { return f.q.Dequeue() }
func (f *fifo) empty() bool { return f.q.Empty() }

// lifo resumes from the newest pushed cell.
type lifo struct {
	s *stack.Stack[int]
}

func newLIFO() *lifo {
	return &lifo{s: stack.New[int]()}
}

func (l *lifo) push(id int) { l.s.Push(id) }
func (l *lifo) pop() int    { return l.s.Pop() }
func (l *lifo) empty() bool { return l.s.Size() == 0 }
