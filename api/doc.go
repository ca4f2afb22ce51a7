// Package api defines the wire contract with the fname registry.
//
// A name is claimed with a POST to /transfers carrying
//
//	{
//	  "from": 0,
//	  "to": 123,
//	  "fid": 123,
//	  "name": "alice",
//	  "timestamp": 1700000000,
//	  "owner": "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
//	  "signature": "0x..."
//	}
//
// where signature is the EIP-712 UserNameProof signature of owner over
// (name, timestamp, owner). The registry rejects timestamps older than the
// last accepted transfer for the name.
//
// The HTTP client lives in package api/clients.
package api
