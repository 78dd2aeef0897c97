package holiday

import (
	"context"
	"time"

	"github.com/chargecost/chargecost/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockRegistry is a testify mock of Registry for use in tests.
type MockRegistry struct {
	mock.Mock
}

var _ Registry = (*MockRegistry)(nil)

func (m *MockRegistry) HolidaysOn(ctx context.Context, date time.Time) (types.JurisdictionSet, error) {
	args := m.Called(ctx, date)
	if set, ok := args.Get(0).(types.JurisdictionSet); ok {
		return set, args.Error(1)
	}
	return nil, args.Error(1)
}
