package repositories

import (
	"sync"

	"github.com/desertthunder/nowplaying/internal/models"
)

// MemoryTokenRepository implements [TokenStore] with a single in-memory record.
//
// The zero value is ready to use and starts unauthenticated.
type MemoryTokenRepository struct {
	record models.TokenRecord
	mu     sync.RWMutex
}

// NewMemoryTokenRepository creates an empty [MemoryTokenRepository].
func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{}
}

// Read returns a copy of the stored record.
func (r *MemoryTokenRepository) Read() models.TokenRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.record
}

// Write overwrites the stored record. Last write wins.
func (r *MemoryTokenRepository) Write(record models.TokenRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record = record
}
