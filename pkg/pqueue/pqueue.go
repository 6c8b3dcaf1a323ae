// Package pqueue реализует min-кучу с обратным индексом ключ -> слот,
// что дает decrease-key за O(log n). Используется и для Дейкстры по карте,
// и для очереди ходов.
package pqueue

import (
	"container/heap"
	"errors"
)

var (
	ErrKeyExists   = errors.New("pqueue: key already present")
	ErrNotFound    = errors.New("pqueue: key not found")
	ErrNotDecrease = errors.New("pqueue: new priority is not lower")
)

// item обертка для элемента кучи
type item[K comparable] struct {
	key      K
	priority int
	seq      uint64 // порядок вставки, разрешает ничьи детерминированно
	index    int    // индекс в куче (нужен для Fix)
}

// slots реализует heap.Interface
type slots[K comparable] []*item[K]

func (s slots[K]) Len() int { return len(s) }

func (s slots[K]) Less(i, j int) bool {
	if s[i].priority != s[j].priority {
		return s[i].priority < s[j].priority
	}
	return s[i].seq < s[j].seq
}

func (s slots[K]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *slots[K]) Push(x any) {
	it := x.(*item[K])
	it.index = len(*s)
	*s = append(*s, it)
}

func (s *slots[K]) Pop() any {
	old := *s
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	it.index = -1
	*s = old[:n-1]
	return it
}

// Queue - min-куча по приоритету с поиском по ключу.
type Queue[K comparable] struct {
	heap  slots[K]
	index map[K]*item[K]
	seq   uint64
}

// New создает очередь с заранее выделенной емкостью.
func New[K comparable](capacity int) *Queue[K] {
	return &Queue[K]{
		heap:  make(slots[K], 0, capacity),
		index: make(map[K]*item[K], capacity),
	}
}

func (q *Queue[K]) Len() int { return len(q.heap) }

func (q *Queue[K]) Contains(key K) bool {
	_, ok := q.index[key]
	return ok
}

// Priority возвращает текущий приоритет ключа.
func (q *Queue[K]) Priority(key K) (int, bool) {
	it, ok := q.index[key]
	if !ok {
		return 0, false
	}
	return it.priority, true
}

// Insert добавляет ключ. Повторная вставка того же ключа - ошибка вызывающего.
func (q *Queue[K]) Insert(key K, priority int) error {
	if _, ok := q.index[key]; ok {
		return ErrKeyExists
	}
	it := &item[K]{key: key, priority: priority, seq: q.seq}
	q.seq++
	heap.Push(&q.heap, it)
	q.index[key] = it
	return nil
}

// ExtractMin снимает элемент с наименьшим приоритетом.
// При равных приоритетах первым выходит тот, кто был вставлен раньше.
func (q *Queue[K]) ExtractMin() (K, int, bool) {
	if len(q.heap) == 0 {
		var zero K
		return zero, 0, false
	}
	it := heap.Pop(&q.heap).(*item[K])
	delete(q.index, it.key)
	return it.key, it.priority, true
}

// DecreasePriority понижает приоритет ключа. Новый приоритет обязан быть строго меньше.
func (q *Queue[K]) DecreasePriority(key K, priority int) error {
	it, ok := q.index[key]
	if !ok {
		return ErrNotFound
	}
	if priority >= it.priority {
		return ErrNotDecrease
	}
	it.priority = priority
	heap.Fix(&q.heap, it.index)
	return nil
}

// Remove удаляет ключ из очереди (например, при смерти актора).
func (q *Queue[K]) Remove(key K) bool {
	it, ok := q.index[key]
	if !ok {
		return false
	}
	heap.Remove(&q.heap, it.index)
	delete(q.index, key)
	return true
}

// Each обходит элементы в порядке хранения в куче (не отсортировано).
func (q *Queue[K]) Each(fn func(key K, priority int)) {
	for _, it := range q.heap {
		fn(it.key, it.priority)
	}
}
