package registrar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ruteri/fid-registrar/api"
	"github.com/ruteri/fid-registrar/common"
	"github.com/ruteri/fid-registrar/cryptoutils"
	"github.com/ruteri/fid-registrar/interfaces"
)

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrNoChainClient   = errors.New("registering a new fid requires a chain client")
	ErrUnknownTarget   = errors.New("unknown registration target")
	ErrMissingSigner   = errors.New("signer is required")
	ErrMissingClock    = errors.New("clock is required")
	ErrMissingRegistry = errors.New("registry client is required")
)

// Config carries the components of a Workflow. It is built once at startup;
// Signer holds the only copy of the wallet key.
type Config struct {
	Signer   interfaces.NameProofSigner
	Clock    interfaces.Clock
	Registry api.TransferProvider

	// Chain may be nil if only ExistingFID targets are run
	Chain interfaces.FIDRegistrar

	Log *slog.Logger
}

// Workflow claims names for FIDs. Every step runs sequentially and the first
// error aborts the run.
type Workflow struct {
	signer   interfaces.NameProofSigner
	clock    interfaces.Clock
	registry api.TransferProvider
	chain    interfaces.FIDRegistrar
	log      *slog.Logger
}

func NewWorkflow(cfg *Config) (*Workflow, error) {
	if cfg.Signer == nil {
		return nil, ErrMissingSigner
	}
	if cfg.Clock == nil {
		return nil, ErrMissingClock
	}
	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}

	return &Workflow{
		signer:   cfg.Signer,
		clock:    cfg.Clock,
		registry: cfg.Registry,
		chain:    cfg.Chain,
		log:      common.LoggerOrDiscard(cfg.Log),
	}, nil
}

// Result is the outcome of a run.
type Result struct {
	FID interfaces.FID

	// Registration is nil for ExistingFID targets
	Registration *interfaces.Registration

	Request  api.TransferRequest
	Response *api.TransferResponse
}

// Run claims name for the FID selected by target, buying the FID first for
// NewRegistration targets. ExistingFID targets never touch the chain.
func (w *Workflow) Run(ctx context.Context, name string, target Target) (*Result, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var (
		fid          interfaces.FID
		registration *interfaces.Registration
	)

	switch t := target.(type) {
	case NewRegistration:
		if w.chain == nil {
			return nil, ErrNoChainClient
		}

		var err error
		registration, err = w.chain.RegisterFID(ctx, w.signer.Address(), new(big.Int).SetUint64(t.ExtraStorage))
		if err != nil {
			return nil, fmt.Errorf("could not register fid: %w", err)
		}
		fid = registration.FID
		w.log.Info("registered fid", "fid", fid, "tx", registration.TxHash.Hex())
	case ExistingFID:
		fid = t.FID
		w.log.Info("setting name for existing fid", "fid", fid)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownTarget, target)
	}

	result, err := w.Claim(ctx, name, fid)
	if result != nil {
		result.Registration = registration
	}
	return result, err
}

// Claim signs a UserNameProof for name at the current time and submits it as
// the first transfer of name to fid.
func (w *Workflow) Claim(ctx context.Context, name string, fid interfaces.FID) (*Result, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	timestamp, err := w.clock.Now()
	if err != nil {
		return nil, fmt.Errorf("could not read timestamp: %w", err)
	}

	proof := interfaces.NewUserNameProof(name, timestamp, w.signer.Address())
	signature, err := w.signer.SignNameProof(proof)
	if err != nil {
		return nil, fmt.Errorf("could not sign name proof: %w", err)
	}

	req, err := api.NewInitialTransferRequest(fid, proof, signature)
	if err != nil {
		return nil, err
	}

	w.log.Info("submitting name transfer",
		"name", name,
		"fid", fid,
		"timestamp", timestamp,
		"owner", req.Owner,
	)
	w.log.Debug("name proof signature", "signature", cryptoutils.EncodeSignature(signature))

	resp, err := w.registry.SubmitTransfer(ctx, req)
	result := &Result{FID: fid, Request: req, Response: resp}
	if err != nil {
		return result, fmt.Errorf("could not submit transfer: %w", err)
	}
	return result, nil
}
