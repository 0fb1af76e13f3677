package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockObserver implements shell.Observer for testing across packages
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) CommandExecuted(name string, known bool, elapsed time.Duration) {
	m.Called(name, known, elapsed)
}
