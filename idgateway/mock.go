package idgateway

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/ruteri/fid-registrar/interfaces"
)

// MockFIDRegistrar mocks the interfaces.FIDRegistrar interface
type MockFIDRegistrar struct {
	mock.Mock
}

// RegisterFID mocks the RegisterFID method
func (m *MockFIDRegistrar) RegisterFID(ctx context.Context, recovery common.Address, extraStorage *big.Int) (*interfaces.Registration, error) {
	args := m.Called(ctx, recovery, extraStorage)
	registration, _ := args.Get(0).(*interfaces.Registration)
	return registration, args.Error(1)
}
