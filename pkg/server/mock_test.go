package server

import (
	"context"

	"github.com/chargecost/chargecost/pkg/types"
	"github.com/stretchr/testify/mock"
)

type mockEstimator struct {
	mock.Mock
}

func (m *mockEstimator) TotalCost(ctx context.Context, session types.ChargingSession) (types.CostResult, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return types.CostResult{}, args.Error(1)
	}
	return args.Get(0).(types.CostResult), args.Error(1)
}

func (m *mockEstimator) TotalTime(session types.ChargingSession) string {
	args := m.Called(session)
	return args.String(0)
}

func newTestServer(est Estimator) *Server {
	return &Server{
		calc:        est,
		corsOrigins: []string{"*"},
		serverName:  "chargecost",
	}
}
