package repositories

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/Zevankai/owlbear-weighted-inventory-sub000/internal/repositories TimeProvider

// TimeProvider abstracts the clock so repositories can stamp records
// deterministically in tests
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
