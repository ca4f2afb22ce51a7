package interfaces

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrFIDOverflow = errors.New("fid does not fit in 64 bits")

// FID is a Farcaster account identifier.
type FID uint64

// NewFIDFromBig converts a uint256 contract value to an FID.
func NewFIDFromBig(v *big.Int) (FID, error) {
	if v == nil || v.Sign() < 0 {
		return 0, fmt.Errorf("invalid fid value %v", v)
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s", ErrFIDOverflow, v.String())
	}
	return FID(v.Uint64()), nil
}

func (f FID) String() string {
	return strconv.FormatUint(uint64(f), 10)
}

// UserNameProof is the typed-data message binding Name to Owner.
// Timestamp is a uint256 on the wire and acts as the registry's replay guard:
// the registry rejects proofs older than the last accepted one for a name.
type UserNameProof struct {
	Name      string
	Timestamp *big.Int
	Owner     common.Address
}

func NewUserNameProof(name string, timestamp uint64, owner common.Address) UserNameProof {
	return UserNameProof{
		Name:      name,
		Timestamp: new(big.Int).SetUint64(timestamp),
		Owner:     owner,
	}
}

// Registration describes an FID bought through the IdGateway.
type Registration struct {
	// FID is the id of the registry's Register event in the mined transaction.
	FID FID

	// AssignedAt is the second value returned by the register simulation.
	AssignedAt *big.Int

	// Price is the wei amount quoted and paid.
	Price *big.Int

	TxHash  common.Hash
	Receipt *types.Receipt
}
