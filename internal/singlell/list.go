package singlell

import (
	"fmt"
	"strings"
)

// List is a singly-linked list with insertion at both ends.
// Pop and peek methods report false on an empty list instead of returning a stored value.
type List[T any] interface {
	PushBack(v T)
	PushFront(v T)
	PopBack() (T, bool)
	PopFront() (T, bool)
	Back() (T, bool)
	Front() (T, bool)
	Len() int
	IsEmpty() bool
	Clear()
	fmt.Stringer
}

type node[T any] struct {
	next  *node[T]
	value T
}

type singleLL[T any] struct {
	first *node[T]
	last  *node[T]
	size  int
}

func (l *singleLL[T]) PushBack(v T) {
	n := &node[T]{value: v}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n

		return
	}

	l.last.next = n
	l.last = n
}

func (l *singleLL[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.first}
	l.size++

	if l.first == nil {
		l.last = n
	}

	l.first = n
}

// PopBack walks from the head to find the predecessor of the tail, so it costs O(n).
func (l *singleLL[T]) PopBack() (T, bool) {
	if l.first == nil {
		var result T
		return result, false
	}

	var prev *node[T]

	current := l.first
	for current.next != nil {
		prev = current
		current = current.next
	}

	l.size--

	if prev == nil {
		l.first = nil
		l.last = nil

		return current.value, true
	}

	prev.next = nil
	l.last = prev

	return current.value, true
}

func (l *singleLL[T]) PopFront() (T, bool) {
	if l.first == nil {
		var result T
		return result, false
	}

	n := l.first
	l.first = n.next
	n.next = nil
	l.size--

	if l.first == nil {
		l.last = nil
	}

	return n.value, true
}

func (l *singleLL[T]) Back() (T, bool) {
	if l.last == nil {
		var result T
		return result, false
	}

	return l.last.value, true
}

func (l *singleLL[T]) Front() (T, bool) {
	if l.first == nil {
		var result T
		return result, false
	}

	return l.first.value, true
}

func (l *singleLL[T]) Len() int {
	return l.size
}

func (l *singleLL[T]) IsEmpty() bool {
	return l.first == nil
}

// Clear unlinks every node from head to tail.
func (l *singleLL[T]) Clear() {
	for l.first != nil {
		n := l.first
		l.first = n.next
		n.next = nil
	}

	l.last = nil
	l.size = 0
}

func (l *singleLL[T]) String() string {
	builder := strings.Builder{}
	builder.WriteByte('[')

	for n := l.first; n != nil; n = n.next {
		if n != l.first {
			builder.WriteString(", ")
		}

		fmt.Fprintf(&builder, "%v", n.value)
	}

	builder.WriteByte(']')

	return builder.String()
}

func New[T any]() List[T] {
	return &singleLL[T]{}
}
