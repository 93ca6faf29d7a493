package model

import (
	"errors"
	"fmt"
	"iter"
)

// initialCapacity is the buffer size a fresh List starts with.
const initialCapacity = 8

// ErrInvalidIndex is returned by Remove for positions outside 1..Len().
var ErrInvalidIndex = errors.New("invalid index")

// List is the ordered, in-memory shopping list.
// It is owned by a single session and is not safe for concurrent use.
type List struct {
	items []Item
}

func New() *List {
	return &List{items: make([]Item, 0, initialCapacity)}
}

// Add appends text after trimming it. Empty or whitespace-only text is
// ignored and Add reports false.
func (l *List) Add(text string) bool {
	it := Normalize(text)
	if it == "" {
		return false
	}
	l.grow()
	l.items = append(l.items, it)
	return true
}

// AddAll adds every text in order and returns how many were kept.
func (l *List) AddAll(texts []string) int {
	n := 0
	for _, t := range texts {
		if l.Add(t) {
			n++
		}
	}
	return n
}

// grow doubles the buffer when the next append would exceed it.
func (l *List) grow() {
	if len(l.items) < cap(l.items) {
		return
	}
	c := cap(l.items) * 2
	if c == 0 {
		c = initialCapacity
	}
	next := make([]Item, len(l.items), c)
	copy(next, l.items)
	l.items = next
}

// Remove deletes the item at the 1-based position and returns it.
// Later items shift down by one.
func (l *List) Remove(pos int) (Item, error) {
	if pos < 1 || pos > len(l.items) {
		return "", fmt.Errorf("%w: have %d, got %d", ErrInvalidIndex, len(l.items), pos)
	}
	idx := pos - 1
	it := l.items[idx]
	copy(l.items[idx:], l.items[idx+1:])
	l.items[len(l.items)-1] = ""
	l.items = l.items[:len(l.items)-1]
	return it, nil
}

// Clear removes every item.
func (l *List) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

func (l *List) Len() int    { return len(l.items) }
func (l *List) Empty() bool { return len(l.items) == 0 }

// Items returns a copy of the current items in order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// All yields (1-based position, text) pairs in current order.
// The sequence can be ranged over any number of times.
func (l *List) All() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i, it := range l.items {
			if !yield(i+1, it) {
				return
			}
		}
	}
}
