package idgateway

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// IdRegistryEventsABI is the subset of IdRegistry events emitted while the
// IdGateway registers an FID.
const IdRegistryEventsABI = `[
	{
		"type": "event",
		"name": "Register",
		"anonymous": false,
		"inputs": [
			{"name": "to", "type": "address", "indexed": true},
			{"name": "id", "type": "uint256", "indexed": true},
			{"name": "recovery", "type": "address", "indexed": false}
		]
	}
]`

const EventRegister = "Register"

var ErrNoRegisterEvent = errors.New("no Register event in receipt")

// IdRegistryRegister represents a Register event raised by the IdRegistry contract.
type IdRegistryRegister struct {
	To       common.Address
	Id       *big.Int
	Recovery common.Address
	Raw      types.Log
}

// IdRegistryFilterer decodes IdRegistry events from receipt logs.
type IdRegistryFilterer struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewIdRegistryFilterer creates a log decoder for the IdRegistry deployed at address.
func NewIdRegistryFilterer(address common.Address) (*IdRegistryFilterer, error) {
	parsed, err := abi.JSON(strings.NewReader(IdRegistryEventsABI))
	if err != nil {
		return nil, err
	}
	contract := bind.NewBoundContract(address, parsed, nil, nil, nil)
	return &IdRegistryFilterer{address: address, abi: parsed, contract: contract}, nil
}

// ParseRegister is a log parse operation binding the contract event.
//
// Solidity: event Register(address indexed to, uint256 indexed id, address recovery)
func (f *IdRegistryFilterer) ParseRegister(log types.Log) (*IdRegistryRegister, error) {
	event := new(IdRegistryRegister)
	if err := f.contract.UnpackLog(event, EventRegister, log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// FindRegister returns the Register event for custody address to among logs
// emitted by the registry. Logs of other contracts and events are skipped.
func (f *IdRegistryFilterer) FindRegister(logs []*types.Log, to common.Address) (*IdRegistryRegister, error) {
	eventID := f.abi.Events[EventRegister].ID
	for _, log := range logs {
		if log == nil || log.Address != f.address || len(log.Topics) == 0 || log.Topics[0] != eventID {
			continue
		}
		event, err := f.ParseRegister(*log)
		if err != nil {
			return nil, err
		}
		if event.To == to {
			return event, nil
		}
	}
	return nil, ErrNoRegisterEvent
}
