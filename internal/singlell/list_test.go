package singlell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_PushBack(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{name: "single", values: []int{7}, want: "[7]"},
		{name: "two", values: []int{1, 2}, want: "[1, 2]"},
		{name: "ten", values: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, want: "[0, 1, 2, 3, 4, 5, 6, 7, 8, 9]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			for _, v := range tt.values {
				l.PushBack(v)
			}

			front, ok := l.Front()
			require.True(t, ok)
			assert.Equal(t, tt.values[0], front)

			back, ok := l.Back()
			require.True(t, ok)
			assert.Equal(t, tt.values[len(tt.values)-1], back)

			assert.Equal(t, len(tt.values), l.Len())
			assert.Equal(t, tt.want, l.String())
		})
	}
}

func TestList_PushFront(t *testing.T) {
	t.Run("reverse order", func(t *testing.T) {
		l := New[int]()
		for i := 0; i < 3; i++ {
			l.PushFront(i)
		}

		assert.Equal(t, "[2, 1, 0]", l.String())
	})
	t.Run("on empty becomes head and tail", func(t *testing.T) {
		l := New[string]()
		l.PushFront("a")

		front, _ := l.Front()
		back, _ := l.Back()
		assert.Equal(t, "a", front)
		assert.Equal(t, "a", back)
	})
	t.Run("interleaved with push back", func(t *testing.T) {
		l := New[int]()
		l.PushBack(3)
		l.PushFront(2)
		l.PushBack(4)
		l.PushFront(1)
		l.PushBack(5)

		assert.Equal(t, "[1, 2, 3, 4, 5]", l.String())
		assert.Equal(t, 5, l.Len())
	})
}

func TestList_PopFront(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	l.PushBack("b")

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, "b", front)

	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, "b", back)

	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.True(t, l.IsEmpty())

	_, ok = l.Back()
	assert.False(t, ok)
}

func TestList_PopBack(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	l.PushBack("b")

	v, ok := l.PopBack()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	back, ok := l.Back()
	require.True(t, ok)
	assert.Equal(t, "a", back)
	assert.Equal(t, "[a]", l.String())

	v, ok = l.PopBack()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.True(t, l.IsEmpty())

	_, ok = l.Front()
	assert.False(t, ok)

	l.PushBack("c")
	assert.Equal(t, "[c]", l.String())
}

func TestList_Empty(t *testing.T) {
	l := New[int]()

	ops := map[string]func() (int, bool){
		"PopBack":  l.PopBack,
		"PopFront": l.PopFront,
		"Back":     l.Back,
		"Front":    l.Front,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			v, ok := op()
			assert.False(t, ok)
			assert.Zero(t, v)
		})
	}

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "[]", l.String())
}

func TestList_StoredZeroIsDistinguishable(t *testing.T) {
	l := New[int]()
	l.PushBack(0)

	v, ok := l.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = l.PopFront()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestList_NonComparableElements(t *testing.T) {
	type payload struct {
		tags []string
	}

	l := New[*payload]()
	l.PushBack(&payload{tags: []string{"x"}})

	v, ok := l.PopBack()
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, v.tags)

	v, ok = l.PopBack()
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestList_RoundTrip(t *testing.T) {
	const n = 50

	pops := map[string]func(l List[int]) (int, bool){
		"front": func(l List[int]) (int, bool) { return l.PopFront() },
		"back":  func(l List[int]) (int, bool) { return l.PopBack() },
	}
	for name, pop := range pops {
		t.Run(name, func(t *testing.T) {
			l := New[int]()
			for i := 0; i < n; i++ {
				l.PushBack(i)
			}

			for i := 0; i < n; i++ {
				v, ok := pop(l)
				require.True(t, ok)

				if name == "front" {
					assert.Equal(t, i, v)
				} else {
					assert.Equal(t, n-1-i, v)
				}
			}

			assert.True(t, l.IsEmpty())
			assert.Equal(t, 0, l.Len())
			assert.Equal(t, "[]", l.String())
		})
	}
}

func TestList_Clear(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.PushFront(i)
	}

	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "[]", l.String())

	_, ok := l.Back()
	assert.False(t, ok)

	l.PushBack(42)
	assert.Equal(t, "[42]", l.String())
}

func TestList_TailHasNoSuccessor(t *testing.T) {
	l := New[int]()
	l.PushFront(2)
	l.PushBack(3)
	l.PushFront(1)
	_, _ = l.PopBack()
	l.PushBack(4)

	impl := l.(*singleLL[int])

	count := 0
	var last *node[int]
	for n := impl.first; n != nil; n = n.next {
		last = n
		count++
	}

	assert.Same(t, impl.last, last)
	assert.Nil(t, impl.last.next)
	assert.Equal(t, impl.size, count)
}
