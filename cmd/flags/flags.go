// Package flags holds the flags shared by the registrar commands. Every flag
// can also be set through its REGISTRAR_* environment variable.
package flags

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/ruteri/fid-registrar/common"
	"github.com/ruteri/fid-registrar/idgateway"
)

const envPrefix = "REGISTRAR_"

var (
	RpcAddrFlag = &cli.StringFlag{
		Name:    "rpc-addr",
		Value:   idgateway.DefaultRPCAddr,
		EnvVars: []string{envPrefix + "RPC_ADDR"},
		Usage:   "OP Mainnet JSON-RPC endpoint used to buy FIDs",
	}
	ChainIDFlag = &cli.Uint64Flag{
		Name:    "chain-id",
		Value:   idgateway.DefaultChainID.Uint64(),
		EnvVars: []string{envPrefix + "CHAIN_ID"},
		Usage:   "chain id the RPC node must report",
	}
)

var (
	LogJSONFlag = &cli.BoolFlag{
		Name:    "log-json",
		EnvVars: []string{envPrefix + "LOG_JSON"},
		Usage:   "write logs to stderr as JSON",
	}
	LogDebugFlag = &cli.BoolFlag{
		Name:    "log-debug",
		EnvVars: []string{envPrefix + "LOG_DEBUG"},
		Usage:   "include debug records, such as confirmation polls",
	}
	LogUIDFlag = &cli.BoolFlag{
		Name:    "log-uid",
		EnvVars: []string{envPrefix + "LOG_UID"},
		Usage:   "tag every record of this run with a random uid",
	}
	LogServiceFlag = &cli.StringFlag{
		Name:    "log-service",
		Value:   common.PackageName,
		EnvVars: []string{envPrefix + "LOG_SERVICE"},
		Usage:   "value of the 'service' log attribute",
	}
)

var CommonFlags = []cli.Flag{
	LogJSONFlag,
	LogDebugFlag,
	LogUIDFlag,
	LogServiceFlag,
}

// LoggingOpts maps the log flags onto common.LoggingOpts.
func LoggingOpts(cCtx *cli.Context) *common.LoggingOpts {
	return &common.LoggingOpts{
		Debug:   cCtx.Bool(LogDebugFlag.Name),
		JSON:    cCtx.Bool(LogJSONFlag.Name),
		Service: cCtx.String(LogServiceFlag.Name),
		Version: common.Version,
	}
}

func SetupLogger(cCtx *cli.Context) *slog.Logger {
	return WithRunID(common.SetupLogger(LoggingOpts(cCtx)), cCtx.Bool(LogUIDFlag.Name))
}

// WithRunID adds a fresh "uid" attribute to log when enabled.
func WithRunID(log *slog.Logger, enabled bool) *slog.Logger {
	if !enabled {
		return log
	}
	return log.With("uid", uuid.NewString())
}
