package iochart

import (
	"errors"
	"os"
	"slices"
	"sync"
)

// Canvas receives rendered charts. A canvas shows at most one chart, Put
// replaces what was there and Clear leaves it blank.
type Canvas interface {
	Put(data []byte) error
	Clear() error
}

// FileCanvas keeps the chart in a file.
type FileCanvas struct {
	Path string
}

// Put writes the chart to the file.
func (c FileCanvas) Put(data []byte) error {
	return os.WriteFile(c.Path, data, 0644)
}

// Clear removes the file. A missing file is already clear.
func (c FileCanvas) Clear() error {
	err := os.Remove(c.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemCanvas keeps the chart in memory.
type MemCanvas struct {
	mu   sync.Mutex
	data []byte
	puts int
}

// Put implements Canvas.
func (c *MemCanvas) Put(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = slices.Clone(data)
	c.puts++
	return nil
}

// Clear implements Canvas.
func (c *MemCanvas) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	return nil
}

// Bytes returns the chart currently on the canvas, nil if blank.
func (c *MemCanvas) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.data)
}

// Puts returns how many charts were put on the canvas.
func (c *MemCanvas) Puts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.puts
}
