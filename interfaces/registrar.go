package interfaces

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NameProofSigner owns the wallet key for the lifetime of the process.
type NameProofSigner interface {
	// Address is the wallet address derived from the key.
	Address() common.Address

	// SignNameProof returns the 65-byte r||s||v signature (v in {27, 28})
	// of the EIP-712 digest of proof.
	SignNameProof(proof UserNameProof) ([]byte, error)
}

// Clock supplies claim timestamps in Unix seconds.
type Clock interface {
	Now() (uint64, error)
}

// FIDRegistrar buys a fresh FID on chain and blocks until the purchase is mined.
type FIDRegistrar interface {
	// RegisterFID quotes the price for extraStorage, pays exactly that price
	// and sets recovery as the recovery address of the new FID.
	RegisterFID(ctx context.Context, recovery common.Address, extraStorage *big.Int) (*Registration, error)
}
