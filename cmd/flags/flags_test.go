package flags

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ruteri/fid-registrar/common"
	"github.com/ruteri/fid-registrar/idgateway"
)

// runWithFlags parses args against the shared flags and hands the context to fn.
func runWithFlags(t *testing.T, fn func(cCtx *cli.Context), args ...string) {
	app := &cli.App{
		Name:  "registrar",
		Flags: append([]cli.Flag{RpcAddrFlag, ChainIDFlag}, CommonFlags...),
		Action: func(cCtx *cli.Context) error {
			fn(cCtx)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"registrar"}, args...)))
}

func TestLoggingOpts_Defaults(t *testing.T) {
	runWithFlags(t, func(cCtx *cli.Context) {
		opts := LoggingOpts(cCtx)
		assert.False(t, opts.JSON)
		assert.False(t, opts.Debug)
		assert.Equal(t, common.PackageName, opts.Service)
		assert.Equal(t, common.Version, opts.Version)

		assert.Equal(t, idgateway.DefaultRPCAddr, cCtx.String(RpcAddrFlag.Name))
		assert.Equal(t, uint64(10), cCtx.Uint64(ChainIDFlag.Name))
	})
}

func TestLoggingOpts_FromEnv(t *testing.T) {
	t.Setenv("REGISTRAR_LOG_DEBUG", "true")
	t.Setenv("REGISTRAR_RPC_ADDR", "http://127.0.0.1:8545")

	runWithFlags(t, func(cCtx *cli.Context) {
		opts := LoggingOpts(cCtx)
		assert.True(t, opts.Debug)
		assert.True(t, opts.JSON)
		assert.Equal(t, "claimer", opts.Service)
		assert.Equal(t, "http://127.0.0.1:8545", cCtx.String(RpcAddrFlag.Name))
	}, "--log-json", "--log-service", "claimer")
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := common.SetupLogger(&common.LoggingOpts{JSON: true, Output: &buf})

	WithRunID(logger, false).Info("first")
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "uid")

	buf.Reset()
	WithRunID(logger, true).Info("second")
	record = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	uid, ok := record["uid"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(uid)
	assert.NoError(t, err)
}
