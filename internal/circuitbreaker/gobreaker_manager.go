package circuitbreaker

import (
	"context"
	"sort"
	"sync"

	"prospect-finder/internal/common/logging"
)

// GoBreakerManager keeps one breaker per provider endpoint
type GoBreakerManager struct {
	breakers map[string]*GoBreakerAdapter
	config   Config
	logger   logging.Logger
	mu       sync.RWMutex
}

// NewGoBreakerManager creates a manager whose breakers all share config
func NewGoBreakerManager(config Config, logger logging.Logger) *GoBreakerManager {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	return &GoBreakerManager{
		breakers: make(map[string]*GoBreakerAdapter),
		config:   config,
		logger:   logger,
	}
}

// GetOrCreate gets an existing circuit breaker or creates a new one
func (m *GoBreakerManager) GetOrCreate(name string) *GoBreakerAdapter {
	m.mu.RLock()
	breaker, exists := m.breakers[name]
	m.mu.RUnlock()
	if exists {
		return breaker
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if breaker, exists := m.breakers[name]; exists {
		return breaker
	}
	breaker = NewGoBreaker(name, m.config, m.logger)
	m.breakers[name] = breaker
	return breaker
}

// Execute runs fn through the breaker registered under name
func (m *GoBreakerManager) Execute(ctx context.Context, name string, fn func() error) error {
	return m.GetOrCreate(name).Execute(ctx, fn)
}

// AllStats returns statistics for every breaker, sorted by name
func (m *GoBreakerManager) AllStats() []Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make([]Stats, 0, len(m.breakers))
	for _, breaker := range m.breakers {
		stats = append(stats, breaker.Stats())
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}
