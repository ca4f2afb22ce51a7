package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ruteri/fid-registrar/api/clients"
	"github.com/ruteri/fid-registrar/cmd/flags"
	"github.com/ruteri/fid-registrar/idgateway"
)

var flagName *cli.StringFlag = &cli.StringFlag{
	Name:     "name",
	Required: true,
	Usage:    "fname to claim",
}
var flagStorage *cli.Uint64Flag = &cli.Uint64Flag{
	Name:  "storage",
	Value: 1,
	Usage: "extra storage units to buy with a new FID",
}
var flagSetFname *cli.BoolFlag = &cli.BoolFlag{
	Name:  "set-fname",
	Usage: "claim the name for an existing FID instead of registering a new one",
}
var flagFid *cli.Uint64Flag = &cli.Uint64Flag{
	Name:  "fid",
	Usage: "FID to claim the name for. Required with --set-fname",
}
var flagFnamesServer *cli.StringFlag = &cli.StringFlag{
	Name:  "fnames-server-addr",
	Value: clients.DefaultFnamesServerAddr,
	Usage: "fname registry address to post transfers to",
}
var flagPrivateKeyEnv *cli.StringFlag = &cli.StringFlag{
	Name:  "private-key-env",
	Value: DefaultPrivateKeyEnv,
	Usage: "environment variable holding the hex encoded wallet key",
}
var flagProgress *cli.BoolFlag = &cli.BoolFlag{
	Name:  "progress",
	Usage: "show a spinner while waiting for the registration to be mined",
}

const usage string = `Registers a Farcaster FID through the IdGateway and claims an fname for it.
With --set-fname the name is claimed for an FID the wallet already owns.`

func main() {
	app := &cli.App{
		Name:  "registrar",
		Usage: usage,
		Flags: append([]cli.Flag{
			flagName,
			flagStorage,
			flagSetFname,
			flagFid,
			flagFnamesServer,
			flagPrivateKeyEnv,
			flagProgress,
			flags.RpcAddrFlag,
			flags.ChainIDFlag,
		}, flags.CommonFlags...),
		Action: func(cCtx *cli.Context) error {
			c, err := NewRegistrarConfig(cCtx)
			if err != nil {
				return err
			}
			return c.Run(cCtx.Context)
		},
	}

	if err := app.Run(os.Args); err != nil {
		if errors.Is(err, idgateway.ErrNoReceipt) {
			fmt.Println("Transaction Failed")
		}
		log.Fatal(err)
	}
}
