package idgateway

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedABI_Selectors(t *testing.T) {
	parsed, err := ParsedABI()
	require.NoError(t, err)

	assert.Equal(t, crypto.Keccak256([]byte("price(uint256)"))[:4], parsed.Methods[MethodPrice].ID)
	assert.Equal(t, crypto.Keccak256([]byte("register(address)"))[:4], parsed.Methods[MethodRegister].ID)
	assert.True(t, parsed.Methods[MethodRegister].IsPayable())
	assert.True(t, parsed.Methods[MethodPrice].IsConstant())
}

func TestPackUnpackRegister(t *testing.T) {
	gateway, err := NewIdGateway(common.HexToAddress("0x00000000Fc25870C6eD6b6c7E41Fb078b7656f69"), nil)
	require.NoError(t, err)

	recovery := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	calldata, err := gateway.PackRegister(recovery)
	require.NoError(t, err)
	require.Len(t, calldata, 4+32)
	assert.Equal(t, common.LeftPadBytes(recovery.Bytes(), 32), calldata[4:])

	parsed, err := ParsedABI()
	require.NoError(t, err)
	returnData, err := parsed.Methods[MethodRegister].Outputs.Pack(big.NewInt(123), big.NewInt(7))
	require.NoError(t, err)

	fid, second, err := gateway.UnpackRegister(returnData)
	require.NoError(t, err)
	assert.Equal(t, int64(123), fid.Int64())
	assert.Equal(t, int64(7), second.Int64())

	_, _, err = gateway.UnpackRegister([]byte{0x01})
	assert.Error(t, err)
}

var testIdRegistryAddress = common.HexToAddress("0x00000000Fc6c5F01Fc30151999387Bb99A9f489b")

func registerLog(t *testing.T, registry common.Address, to common.Address, id int64, recovery common.Address) *types.Log {
	parsed, err := abi.JSON(strings.NewReader(IdRegistryEventsABI))
	require.NoError(t, err)
	event := parsed.Events[EventRegister]
	data, err := event.Inputs.NonIndexed().Pack(recovery)
	require.NoError(t, err)
	return &types.Log{
		Address: registry,
		Topics:  []common.Hash{event.ID, common.BytesToHash(to.Bytes()), common.BigToHash(big.NewInt(id))},
		Data:    data,
	}
}

func TestIdRegistryFilterer_EventSignature(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(IdRegistryEventsABI))
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256Hash([]byte("Register(address,uint256,address)")), parsed.Events[EventRegister].ID)
}

func TestIdRegistryFilterer_FindRegister(t *testing.T) {
	filterer, err := NewIdRegistryFilterer(testIdRegistryAddress)
	require.NoError(t, err)

	custody := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	other := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	recovery := common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")

	logs := []*types.Log{
		{Address: common.HexToAddress("0x00000000Fc25870C6eD6b6c7E41Fb078b7656f69"), Topics: []common.Hash{crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))}},
		registerLog(t, common.HexToAddress("0x000000000000000000000000000000000000dEaD"), custody, 1, recovery),
		registerLog(t, testIdRegistryAddress, other, 2, recovery),
		registerLog(t, testIdRegistryAddress, custody, 3, recovery),
	}

	event, err := filterer.FindRegister(logs, custody)
	require.NoError(t, err)
	assert.Equal(t, custody, event.To)
	assert.Equal(t, int64(3), event.Id.Int64())
	assert.Equal(t, recovery, event.Recovery)
	assert.Equal(t, testIdRegistryAddress, event.Raw.Address)

	_, err = filterer.FindRegister(logs[:3], custody)
	assert.ErrorIs(t, err, ErrNoRegisterEvent)

	_, err = filterer.FindRegister(nil, custody)
	assert.ErrorIs(t, err, ErrNoRegisterEvent)
}
