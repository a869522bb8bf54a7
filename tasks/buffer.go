package tasks

import "sync"

// Buffer is used to temporarily buffer transcoded lines
// until every line before them has been written.
type Buffer struct {
	mu sync.Mutex
	// next indicates the index of the next line to write.
	next   int
	buffer map[int]string
}

// NewBuffer inits a new line buffer starting at index 0.
func NewBuffer() *Buffer {
	return &Buffer{
		buffer: make(map[int]string),
	}
}

// Put adds the line with the given index into buffer.
func (b *Buffer) Put(index int, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buffer[index] = text
}

// PopNext pops the next line in order, if it has arrived.
func (b *Buffer) PopNext() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	text, ok := b.buffer[b.next]
	if !ok {
		return "", false
	}

	delete(b.buffer, b.next)
	b.next++

	return text, true
}

// Size returns size of current buffer.
func (b *Buffer) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.buffer)
}
