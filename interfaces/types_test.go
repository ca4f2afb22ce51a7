package interfaces

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFIDFromBig(t *testing.T) {
	fid, err := NewFIDFromBig(big.NewInt(123))
	require.NoError(t, err)
	assert.Equal(t, FID(123), fid)
	assert.Equal(t, "123", fid.String())

	_, err = NewFIDFromBig(nil)
	assert.Error(t, err)

	_, err = NewFIDFromBig(big.NewInt(-1))
	assert.Error(t, err)

	tooLarge := new(big.Int).Lsh(big.NewInt(1), 64)
	_, err = NewFIDFromBig(tooLarge)
	assert.ErrorIs(t, err, ErrFIDOverflow)
}

func TestNewUserNameProof(t *testing.T) {
	owner := common.HexToAddress("0xabc0000000000000000000000000000000000abc")
	proof := NewUserNameProof("alice", 1700000000, owner)

	assert.Equal(t, "alice", proof.Name)
	assert.Equal(t, owner, proof.Owner)
	assert.Equal(t, uint64(1700000000), proof.Timestamp.Uint64())
}
