package singlell

import (
	"github.com/lueurxax/singlell/internal/log"
)

const (
	operationKey = "operation"
	lenKey       = "len"
	emptyKey     = "empty"
)

type traceMiddleware[T any] struct {
	next List[T]
	log  log.Logger
}

func (m *traceMiddleware[T]) PushBack(v T) {
	m.next.PushBack(v)
	m.trace(opPushBack).Tracef("pushed %v", v)
}

func (m *traceMiddleware[T]) PushFront(v T) {
	m.next.PushFront(v)
	m.trace(opPushFront).Tracef("pushed %v", v)
}

func (m *traceMiddleware[T]) PopBack() (T, bool) {
	v, ok := m.next.PopBack()
	m.trace(opPopBack).WithField(emptyKey, !ok).Trace("popped")

	return v, ok
}

func (m *traceMiddleware[T]) PopFront() (T, bool) {
	v, ok := m.next.PopFront()
	m.trace(opPopFront).WithField(emptyKey, !ok).Trace("popped")

	return v, ok
}

func (m *traceMiddleware[T]) Back() (T, bool) {
	v, ok := m.next.Back()
	m.trace(opBack).WithField(emptyKey, !ok).Trace("peeked")

	return v, ok
}

func (m *traceMiddleware[T]) Front() (T, bool) {
	v, ok := m.next.Front()
	m.trace(opFront).WithField(emptyKey, !ok).Trace("peeked")

	return v, ok
}

func (m *traceMiddleware[T]) Len() int {
	return m.next.Len()
}

func (m *traceMiddleware[T]) IsEmpty() bool {
	return m.next.IsEmpty()
}

func (m *traceMiddleware[T]) Clear() {
	m.next.Clear()
	m.trace(opClear).Trace("cleared")
}

func (m *traceMiddleware[T]) String() string {
	return m.next.String()
}

func (m *traceMiddleware[T]) trace(op string) log.Logger {
	return m.log.WithField(operationKey, op).WithField(lenKey, m.next.Len())
}

// NewTraceMiddleware logs every list operation at trace level.
func NewTraceMiddleware[T any](next List[T], logger log.Logger) List[T] {
	return &traceMiddleware[T]{next: next, log: logger}
}
