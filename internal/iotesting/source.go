package iotesting

import (
	"sync"

	"github.com/mavunowatch/mavuno/pkg/vocab"
)

// Source implements metadata.Source with a vocabulary that can be
// replaced during a test.
type Source struct {
	mu  sync.Mutex
	voc *vocab.Vocabulary
}

// NewSource creates a Source with a vocabulary made of given names.
func NewSource(counties, crops []string) *Source {
	return &Source{voc: vocab.New(counties, crops)}
}

// Vocabulary implements metadata.Source.
func (s *Source) Vocabulary() *vocab.Vocabulary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voc
}

// Set replaces the vocabulary. A nil value means not loaded.
func (s *Source) Set(voc *vocab.Vocabulary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voc = voc
}
