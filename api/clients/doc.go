/*
Package clients provides the HTTP client of the fname registry.

TransferClient posts signed transfers to <ServerAddr>/transfers. Any response
outside the 2xx range is reported as ErrTransferRejected; the registry's "code"
and "error" fields are included in the error message and the raw body is still
returned to the caller for display.

# Example Usage

	client := clients.NewTransferClient(clients.DefaultFnamesServerAddr, logger)
	resp, err := client.SubmitTransfer(ctx, api.TransferRequest{
	    From:      0,
	    To:        fid,
	    FID:       fid,
	    Name:      "alice",
	    Timestamp: timestamp,
	    Owner:     owner,
	    Signature: signature,
	})

Requests are never retried and use the transport defaults of the configured
http.Client.
*/
package clients
