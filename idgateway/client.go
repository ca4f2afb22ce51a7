package idgateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/rpc"

	gatewaybindings "github.com/ruteri/fid-registrar/bindings/idgateway"
	regcommon "github.com/ruteri/fid-registrar/common"
	"github.com/ruteri/fid-registrar/interfaces"
)

var (
	// ErrNoTransactOpts is returned when a transaction is attempted without first setting transaction options.
	ErrNoTransactOpts = errors.New("no authorized transactor available")

	// ErrNoReceipt is returned when the node knows neither the receipt nor the
	// transaction itself, i.e. the transaction was dropped or replaced.
	ErrNoReceipt = errors.New("transaction has no receipt")

	ErrTransactionReverted = errors.New("transaction reverted")
	ErrEmptyCallResult     = errors.New("contract call returned no data")
)

// OP Mainnet deployments. The gateway mints FIDs in the registry, which emits
// the Register event.
var (
	IdGatewayAddress  = common.HexToAddress("0x00000000Fc25870C6eD6b6c7E41Fb078b7656f69")
	IdRegistryAddress = common.HexToAddress("0x00000000Fc6c5F01Fc30151999387Bb99A9f489b")
)

// Error data of geth's retryable lookup error while the tx index catches up.
const txIndexingInProgress = "transaction indexing is in progress"

const DefaultPollInterval = time.Second

// Backend is the node connection used by Client. Both *ethclient.Client and
// the simulated backend's client satisfy it.
type Backend interface {
	bind.ContractBackend
	ethereum.TransactionReader
}

// RegistrationState tracks a single FID purchase.
type RegistrationState string

const (
	StateQuoted    RegistrationState = "quoted"
	StateSimulated RegistrationState = "simulated"
	StateSubmitted RegistrationState = "submitted"
	StateConfirmed RegistrationState = "confirmed"
	StateFailed    RegistrationState = "failed"
)

// Client implements interfaces.FIDRegistrar against a deployed IdGateway.
type Client struct {
	gateway  *gatewaybindings.IdGateway
	registry *gatewaybindings.IdRegistryFilterer
	backend  Backend
	address common.Address
	auth    *bind.TransactOpts
	log     *slog.Logger

	// PollInterval is the receipt polling period of AwaitConfirmation.
	PollInterval time.Duration

	// OnPoll, if set, is called every time a receipt poll finds the
	// transaction still pending.
	OnPoll func()
}

// NewClient creates a client for the IdGateway at address.
func NewClient(backend Backend, address common.Address, log *slog.Logger) (*Client, error) {
	gateway, err := gatewaybindings.NewIdGateway(address, backend)
	if err != nil {
		return nil, err
	}

	registry, err := gatewaybindings.NewIdRegistryFilterer(IdRegistryAddress)
	if err != nil {
		return nil, err
	}

	return &Client{
		gateway:      gateway,
		registry:     registry,
		backend:      backend,
		address:      address,
		log:          regcommon.LoggerOrDiscard(log),
		PollInterval: DefaultPollInterval,
	}, nil
}

// SetTransactOpts sets the transaction options required for functions that modify state.
// This must be called before simulating or submitting a registration.
func (c *Client) SetTransactOpts(auth *bind.TransactOpts) {
	c.auth = auth
}

// Price quotes the wei cost of registering with extraStorage storage units.
// The value is never cached.
func (c *Client) Price(ctx context.Context, extraStorage *big.Int) (*big.Int, error) {
	price, err := c.gateway.Price(&bind.CallOpts{Context: ctx}, extraStorage)
	if err != nil {
		return nil, fmt.Errorf("could not quote price: %w", err)
	}
	return price, nil
}

// SimulateRegister runs register(recovery) as an eth_call paying value from
// the transactor address and returns the anticipated FID and second output.
func (c *Client) SimulateRegister(ctx context.Context, recovery common.Address, value *big.Int) (interfaces.FID, *big.Int, error) {
	if c.auth == nil {
		return 0, nil, ErrNoTransactOpts
	}

	calldata, err := c.gateway.PackRegister(recovery)
	if err != nil {
		return 0, nil, err
	}

	to := c.address
	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{
		From:  c.auth.From,
		To:    &to,
		Value: value,
		Data:  calldata,
	}, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("register simulation failed: %w", err)
	}
	if len(out) == 0 {
		return 0, nil, ErrEmptyCallResult
	}

	rawFid, second, err := c.gateway.UnpackRegister(out)
	if err != nil {
		return 0, nil, fmt.Errorf("could not decode register result: %w", err)
	}

	fid, err := interfaces.NewFIDFromBig(rawFid)
	if err != nil {
		return 0, nil, err
	}
	return fid, second, nil
}

// SubmitRegister sends register(recovery) carrying exactly value wei.
func (c *Client) SubmitRegister(ctx context.Context, recovery common.Address, value *big.Int) (*types.Transaction, error) {
	if c.auth == nil {
		return nil, ErrNoTransactOpts
	}

	opts := *c.auth
	opts.Context = ctx
	opts.Value = new(big.Int).Set(value)

	tx, err := c.gateway.Register(&opts, recovery)
	if err != nil {
		return nil, fmt.Errorf("could not submit register transaction: %w", err)
	}
	return tx, nil
}

// AwaitConfirmation blocks until tx is mined. There is no retry or fee bump:
// a dropped transaction yields ErrNoReceipt and a failed one ErrTransactionReverted.
func (c *Client) AwaitConfirmation(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	interval := c.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	txHash := tx.Hash()
	for {
		receipt, err := c.backend.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, fmt.Errorf("%w: %s", ErrTransactionReverted, txHash.Hex())
			}
			return receipt, nil
		case errors.Is(err, ethereum.NotFound):
			_, _, err = c.backend.TransactionByHash(ctx, txHash)
			if errors.Is(err, ethereum.NotFound) {
				return nil, fmt.Errorf("%w: %s", ErrNoReceipt, txHash.Hex())
			} else if err != nil && !isTxIndexingInProgress(err) {
				return nil, fmt.Errorf("could not fetch transaction: %w", err)
			}
		case isTxIndexingInProgress(err):
			c.log.Debug("node is still indexing transactions", "tx", txHash.Hex())
		default:
			return nil, fmt.Errorf("could not fetch receipt: %w", err)
		}

		c.log.Debug("transaction pending", "tx", txHash.Hex())
		if c.OnPoll != nil {
			c.OnPoll()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// isTxIndexingInProgress reports whether err means the node cannot answer a
// lookup yet. Such a lookup is neither found nor missing.
func isTxIndexingInProgress(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data, ok := dataErr.ErrorData().(string); ok && data == txIndexingInProgress {
			return true
		}
	}
	return strings.Contains(err.Error(), txIndexingInProgress)
}

// RegisterFID quotes, simulates, submits and confirms a registration.
// The quoted price is paid verbatim. The returned FID is read from the
// registry's Register event in the receipt; the simulated one is only logged.
func (c *Client) RegisterFID(ctx context.Context, recovery common.Address, extraStorage *big.Int) (*interfaces.Registration, error) {
	log := c.log.With("recovery", recovery.Hex(), "extraStorage", extraStorage.String())

	fail := func(state RegistrationState, err error) (*interfaces.Registration, error) {
		log.Error("registration failed", "state", StateFailed, "after", state, "err", err)
		return nil, err
	}

	price, err := c.Price(ctx, extraStorage)
	if err != nil {
		return fail(StateQuoted, err)
	}
	log.Info("registration price", "state", StateQuoted, "wei", price.String(), "eth", FormatEther(price))

	simulatedFid, assignedAt, err := c.SimulateRegister(ctx, recovery, price)
	if err != nil {
		return fail(StateSimulated, err)
	}
	log.Info("simulated registration", "state", StateSimulated, "fid", simulatedFid)

	tx, err := c.SubmitRegister(ctx, recovery, price)
	if err != nil {
		return fail(StateSubmitted, err)
	}
	log.Info("registration submitted", "state", StateSubmitted, "tx", tx.Hash().Hex())

	receipt, err := c.AwaitConfirmation(ctx, tx)
	if err != nil {
		return fail(StateConfirmed, err)
	}
	event, err := c.registry.FindRegister(receipt.Logs, c.auth.From)
	if err != nil {
		return fail(StateConfirmed, fmt.Errorf("could not read fid from receipt %s: %w", receipt.TxHash.Hex(), err))
	}
	fid, err := interfaces.NewFIDFromBig(event.Id)
	if err != nil {
		return fail(StateConfirmed, err)
	}
	if fid != simulatedFid {
		log.Warn("mined fid differs from simulation", "fid", fid, "simulatedFid", simulatedFid)
	}
	log.Info("registration confirmed", "state", StateConfirmed, "fid", fid, "tx", receipt.TxHash.Hex(), "block", receipt.BlockNumber)

	return &interfaces.Registration{
		FID:        fid,
		AssignedAt: assignedAt,
		Price:      price,
		TxHash:     tx.Hash(),
		Receipt:    receipt,
	}, nil
}

// FormatEther renders a wei amount in ether.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), new(big.Float).SetInt64(params.Ether))
	return eth.Text('f', -1)
}
