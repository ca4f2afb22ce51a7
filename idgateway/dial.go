package idgateway

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
)

const DefaultRPCAddr = "https://optimism.meowrpc.com"

// OP Mainnet
var DefaultChainID = big.NewInt(10)

var ErrChainIDMismatch = errors.New("node chain id does not match")

// Dial connects to rpcAddr and refuses nodes serving a different chain than expectedChainID.
func Dial(ctx context.Context, rpcAddr string, expectedChainID *big.Int) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcAddr)
	if err != nil {
		return nil, fmt.Errorf("could not connect to %s: %w", rpcAddr, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not fetch chain id: %w", err)
	}

	if chainID.Cmp(expectedChainID) != 0 {
		client.Close()
		return nil, fmt.Errorf("%w: expected %s, node reports %s", ErrChainIDMismatch, expectedChainID, chainID)
	}

	return client, nil
}
