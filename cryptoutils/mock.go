package cryptoutils

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/ruteri/fid-registrar/interfaces"
)

// MockNameProofSigner mocks the interfaces.NameProofSigner interface
type MockNameProofSigner struct {
	mock.Mock
}

func (m *MockNameProofSigner) Address() common.Address {
	args := m.Called()
	return args.Get(0).(common.Address)
}

func (m *MockNameProofSigner) SignNameProof(proof interfaces.UserNameProof) ([]byte, error) {
	args := m.Called(proof)
	sig, _ := args.Get(0).([]byte)
	return sig, args.Error(1)
}
