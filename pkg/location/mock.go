package location

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockResolver is a testify mock of Resolver for use in tests.
type MockResolver struct {
	mock.Mock
}

var _ Resolver = (*MockResolver)(nil)

func (m *MockResolver) Resolve(ctx context.Context, postcode int, suburb string) (string, error) {
	args := m.Called(ctx, postcode, suburb)
	return args.String(0), args.Error(1)
}
