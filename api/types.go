package api

import (
	"context"
	"fmt"

	"github.com/ruteri/fid-registrar/cryptoutils"
	"github.com/ruteri/fid-registrar/interfaces"
)

// TransferProvider defines the interface of the fname registry.
type TransferProvider interface {
	// SubmitTransfer posts a signed transfer to the registry.
	// Returns:
	//   - The registry response, also on rejection when one was received
	//   - Error if the request could not be made or the registry rejected it
	SubmitTransfer(ctx context.Context, req TransferRequest) (*TransferResponse, error)
}

// TransferRequest is the body of POST /transfers.
type TransferRequest struct {
	// From is the FID the name moves away from, 0 for a first assignment
	From uint64 `json:"from"`

	// To is the FID receiving the name
	To uint64 `json:"to"`

	FID       uint64 `json:"fid"`
	Name      string `json:"name"`
	Timestamp uint64 `json:"timestamp"`

	// Owner is the lowercase 0x address that signed the proof
	Owner string `json:"owner"`

	// Signature is the lowercase 0x hex r||s||v signature of the UserNameProof
	Signature string `json:"signature"`
}

// NewInitialTransferRequest builds the request assigning proof.Name to fid.
// From is always 0: the name has no previous owner FID.
func NewInitialTransferRequest(fid interfaces.FID, proof interfaces.UserNameProof, signature []byte) (TransferRequest, error) {
	if proof.Timestamp == nil || !proof.Timestamp.IsUint64() {
		return TransferRequest{}, fmt.Errorf("name proof timestamp %v does not fit the transfer request", proof.Timestamp)
	}

	return TransferRequest{
		From:      0,
		To:        uint64(fid),
		FID:       uint64(fid),
		Name:      proof.Name,
		Timestamp: proof.Timestamp.Uint64(),
		Owner:     cryptoutils.EncodeAddress(proof.Owner),
		Signature: cryptoutils.EncodeSignature(signature),
	}, nil
}

// TransferResponse is the registry's answer to a transfer.
type TransferResponse struct {
	StatusCode int

	// Body is the response body as received
	Body string

	// TransferID is transfer.id of an accepted transfer, 0 if absent
	TransferID int64
}
