package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/ruteri/fid-registrar/api/clients"
	"github.com/ruteri/fid-registrar/cmd/flags"
	"github.com/ruteri/fid-registrar/cryptoutils"
	"github.com/ruteri/fid-registrar/idgateway"
	"github.com/ruteri/fid-registrar/interfaces"
	"github.com/ruteri/fid-registrar/registrar"
)

// Read from the environment so that the key never shows up in argv.
const DefaultPrivateKeyEnv = "PKEY"

var (
	ErrMissingPrivateKey = errors.New("missing private key")
	ErrMissingFID        = errors.New("--fid is required with --set-fname")
)

// RegistrarConfig is built once per invocation and owns the wallet key.
type RegistrarConfig struct {
	Name   string
	Target registrar.Target

	Signer       *cryptoutils.NameProofSigner
	RPCAddr      string
	ChainID      *big.Int
	FnamesServer string
	Progress     bool

	// Out receives the registry response body
	Out io.Writer
	Log *slog.Logger
}

func NewRegistrarConfig(cCtx *cli.Context) (*RegistrarConfig, error) {
	target, err := TargetFromFlags(cCtx)
	if err != nil {
		return nil, err
	}

	signer, err := LoadSigner(cCtx.String(flagPrivateKeyEnv.Name))
	if err != nil {
		return nil, err
	}

	return &RegistrarConfig{
		Name:         cCtx.String(flagName.Name),
		Target:       target,
		Signer:       signer,
		RPCAddr:      cCtx.String(flags.RpcAddrFlag.Name),
		ChainID:      new(big.Int).SetUint64(cCtx.Uint64(flags.ChainIDFlag.Name)),
		FnamesServer: cCtx.String(flagFnamesServer.Name),
		Progress:     cCtx.Bool(flagProgress.Name),
		Out:          os.Stdout,
		Log:          flags.SetupLogger(cCtx),
	}, nil
}

// TargetFromFlags maps --set-fname/--fid/--storage to a registration target.
func TargetFromFlags(cCtx *cli.Context) (registrar.Target, error) {
	if cCtx.Bool(flagSetFname.Name) {
		if !cCtx.IsSet(flagFid.Name) {
			return nil, ErrMissingFID
		}
		return registrar.ExistingFID{FID: interfaces.FID(cCtx.Uint64(flagFid.Name))}, nil
	}
	return registrar.NewRegistration{ExtraStorage: cCtx.Uint64(flagStorage.Name)}, nil
}

// LoadSigner reads the hex wallet key from the environment variable envName.
func LoadSigner(envName string) (*cryptoutils.NameProofSigner, error) {
	hexKey, ok := os.LookupEnv(envName)
	if !ok || hexKey == "" {
		return nil, fmt.Errorf("%w: set %s", ErrMissingPrivateKey, envName)
	}
	return cryptoutils.NameProofSignerFromHex(hexKey)
}

func (c *RegistrarConfig) Run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.Log.Info("using address", "address", c.Signer.Address().Hex())

	wfConfig := &registrar.Config{
		Signer:   c.Signer,
		Clock:    registrar.NewSystemClock(),
		Registry: clients.NewTransferClient(c.FnamesServer, c.Log),
		Log:      c.Log,
	}

	// The chain is only touched when a new FID is bought
	if _, ok := c.Target.(registrar.NewRegistration); ok {
		chain, closeChain, err := c.connectChain(ctx)
		if err != nil {
			return err
		}
		defer closeChain()
		wfConfig.Chain = chain
	}

	workflow, err := registrar.NewWorkflow(wfConfig)
	if err != nil {
		return err
	}

	result, err := workflow.Run(ctx, c.Name, c.Target)
	if result != nil && result.Response != nil && c.Out != nil {
		fmt.Fprintln(c.Out, result.Response.Body)
	}
	if err != nil {
		return err
	}

	if result.Registration != nil {
		c.Log.Info("registered fid", "fid", result.FID, "tx", result.Registration.TxHash.Hex())
	}
	c.Log.Info("name claimed", "name", c.Name, "fid", result.FID, "status", result.Response.StatusCode)
	return nil
}

func (c *RegistrarConfig) connectChain(ctx context.Context) (*idgateway.Client, func(), error) {
	ethClient, err := idgateway.Dial(ctx, c.RPCAddr, c.ChainID)
	if err != nil {
		return nil, nil, err
	}

	chain, err := idgateway.NewClient(ethClient, idgateway.IdGatewayAddress, c.Log)
	if err != nil {
		ethClient.Close()
		return nil, nil, err
	}

	auth, err := bind.NewKeyedTransactorWithChainID(c.Signer.PrivateKey(), c.ChainID)
	if err != nil {
		ethClient.Close()
		return nil, nil, err
	}
	chain.SetTransactOpts(auth)

	closeFn := ethClient.Close
	if c.Progress {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("waiting for confirmation"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
		chain.OnPoll = func() { _ = bar.Add(1) }
		closeFn = func() {
			_ = bar.Finish()
			ethClient.Close()
		}
	}

	return chain, closeFn, nil
}
