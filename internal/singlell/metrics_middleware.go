package singlell

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opPushBack  = "push_back"
	opPushFront = "push_front"
	opPopBack   = "pop_back"
	opPopFront  = "pop_front"
	opBack      = "back"
	opFront     = "front"
	opClear     = "clear"
)

type metricMiddleware[T any] struct {
	name string
	next List[T]

	operationsTotal *prometheus.CounterVec
	length          *prometheus.GaugeVec
}

func (m *metricMiddleware[T]) PushBack(v T) {
	m.next.PushBack(v)
	m.observe(opPushBack, true)
}

func (m *metricMiddleware[T]) PushFront(v T) {
	m.next.PushFront(v)
	m.observe(opPushFront, true)
}

func (m *metricMiddleware[T]) PopBack() (T, bool) {
	v, ok := m.next.PopBack()
	m.observe(opPopBack, ok)

	return v, ok
}

func (m *metricMiddleware[T]) PopFront() (T, bool) {
	v, ok := m.next.PopFront()
	m.observe(opPopFront, ok)

	return v, ok
}

func (m *metricMiddleware[T]) Back() (T, bool) {
	v, ok := m.next.Back()
	m.operationsTotal.WithLabelValues(m.name, opBack, strconv.FormatBool(!ok)).Inc()

	return v, ok
}

func (m *metricMiddleware[T]) Front() (T, bool) {
	v, ok := m.next.Front()
	m.operationsTotal.WithLabelValues(m.name, opFront, strconv.FormatBool(!ok)).Inc()

	return v, ok
}

func (m *metricMiddleware[T]) Len() int {
	return m.next.Len()
}

func (m *metricMiddleware[T]) IsEmpty() bool {
	return m.next.IsEmpty()
}

func (m *metricMiddleware[T]) Clear() {
	m.next.Clear()
	m.observe(opClear, true)
}

func (m *metricMiddleware[T]) String() string {
	return m.next.String()
}

// observe counts a mutating call and refreshes the length gauge.
func (m *metricMiddleware[T]) observe(op string, found bool) {
	m.operationsTotal.WithLabelValues(m.name, op, strconv.FormatBool(!found)).Inc()
	m.length.WithLabelValues(m.name).Set(float64(m.next.Len()))
}

// NewMetricsMiddleware wraps next with operation counters and a length gauge labelled by name.
// Collectors already registered by another list are shared.
func NewMetricsMiddleware[T any](next List[T], registerer prometheus.Registerer, name string) (List[T], error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "singlell",
		Subsystem: "list",
		Name:      "operations_total",
		Help:      "List operations counter, empty is true when a pop or peek found no element",
	}, []string{"list", "operation", "empty"})

	length := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "singlell",
		Subsystem: "list",
		Name:      "length",
		Help:      "Current number of elements in the list",
	}, []string{"list"})

	var err error
	if ops, err = register(registerer, ops); err != nil {
		return nil, err
	}

	if length, err = register(registerer, length); err != nil {
		return nil, err
	}

	length.WithLabelValues(name).Set(float64(next.Len()))

	return &metricMiddleware[T]{
		name:            name,
		next:            next,
		operationsTotal: ops,
		length:          length,
	}, nil
}

func register[C prometheus.Collector](registerer prometheus.Registerer, c C) (C, error) {
	err := registerer.Register(c)
	if err == nil {
		return c, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}
