package mocks

import (
	"context"

	"mindtrack/internal/domain"

	"github.com/stretchr/testify/mock"
)

// AlertCreator stands in for the alert service's creation path in
// sentinel tests.
type AlertCreator struct {
	mock.Mock
}

func (m *AlertCreator) Create(ctx context.Context, input domain.CreateAlertInput) (*domain.Alert, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alert), args.Error(1)
}
