// Package idgateway buys Farcaster IDs (FIDs) through the IdGateway contract
// deployed on OP Mainnet.
//
// A purchase moves through the states
//
//	quoted -> simulated -> submitted -> confirmed | failed
//
// Client.RegisterFID quotes price(extraStorage), runs register(recovery) as an
// eth_call paying the quoted amount to preview the FID, sends the same call as
// a transaction and waits for its receipt. The FID it returns is taken from the
// IdRegistry Register event of the mined transaction. Nothing is persisted
// between the steps; a crash after submission has to be reconciled by hand.
//
// AwaitConfirmation polls for the receipt. While the node reports that its
// transaction index is still being built the transaction counts as pending.
// It returns ErrNoReceipt when the node no longer knows the transaction
// (dropped or replaced) and ErrTransactionReverted when it was mined with a
// failed status. There are no fee bumps.
//
// State-changing calls, including the simulation, need transaction options:
//
//	client, err := idgateway.NewClient(ethClient, idgateway.IdGatewayAddress, logger)
//	auth, _ := bind.NewKeyedTransactorWithChainID(privateKey, idgateway.DefaultChainID)
//	client.SetTransactOpts(auth)
//	registration, err := client.RegisterFID(ctx, auth.From, big.NewInt(1))
package idgateway
