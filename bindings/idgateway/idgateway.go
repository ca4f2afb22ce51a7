// Package idgateway contains Go bindings for the subset of the Farcaster
// IdGateway contract used by the registrar.
package idgateway

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// IdGatewayABI is the input ABI used to generate the binding from.
const IdGatewayABI = `[
	{
		"type": "function",
		"name": "price",
		"stateMutability": "view",
		"inputs": [{"name": "extraStorage", "type": "uint256"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "register",
		"stateMutability": "payable",
		"inputs": [{"name": "recovery", "type": "address"}],
		"outputs": [{"name": "fid", "type": "uint256"}, {"name": "", "type": "uint256"}]
	}
]`

const (
	MethodPrice    = "price"
	MethodRegister = "register"
)

// ParsedABI returns the parsed IdGatewayABI.
func ParsedABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(IdGatewayABI))
}

// IdGateway is a binding around the IdGateway contract.
type IdGateway struct {
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewIdGateway creates a new instance of IdGateway, bound to a specific deployed contract.
func NewIdGateway(address common.Address, backend bind.ContractBackend) (*IdGateway, error) {
	parsed, err := ParsedABI()
	if err != nil {
		return nil, err
	}
	contract := bind.NewBoundContract(address, parsed, backend, backend, backend)
	return &IdGateway{abi: parsed, contract: contract}, nil
}

// Price is a free data retrieval call binding the contract method.
//
// Solidity: function price(uint256 extraStorage) view returns(uint256)
func (g *IdGateway) Price(opts *bind.CallOpts, extraStorage *big.Int) (*big.Int, error) {
	var out []interface{}
	err := g.contract.Call(opts, &out, MethodPrice, extraStorage)
	if err != nil {
		return nil, err
	}

	price := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return price, nil
}

// Register is a paid mutator transaction binding the contract method.
//
// Solidity: function register(address recovery) payable returns(uint256 fid, uint256)
func (g *IdGateway) Register(opts *bind.TransactOpts, recovery common.Address) (*types.Transaction, error) {
	return g.contract.Transact(opts, MethodRegister, recovery)
}

// PackRegister encodes the calldata of register(recovery).
func (g *IdGateway) PackRegister(recovery common.Address) ([]byte, error) {
	return g.abi.Pack(MethodRegister, recovery)
}

// UnpackRegister decodes the return data of register.
func (g *IdGateway) UnpackRegister(data []byte) (fid *big.Int, second *big.Int, err error) {
	out, err := g.abi.Unpack(MethodRegister, data)
	if err != nil {
		return nil, nil, err
	}
	if len(out) != 2 {
		return nil, nil, fmt.Errorf("register returned %d values, expected 2", len(out))
	}

	fid = *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	second = *abi.ConvertType(out[1], new(*big.Int)).(**big.Int)
	return fid, second, nil
}
