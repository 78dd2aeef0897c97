package solar

import (
	"context"
	"time"

	"github.com/chargecost/chargecost/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a testify mock of Provider for use in tests.
type MockProvider struct {
	mock.Mock
}

var _ Provider = (*MockProvider)(nil)

func (m *MockProvider) Day(ctx context.Context, locationID string, date time.Time) (types.SolarDay, error) {
	args := m.Called(ctx, locationID, date)
	if day, ok := args.Get(0).(types.SolarDay); ok {
		return day, args.Error(1)
	}
	return types.SolarDay{}, args.Error(1)
}
