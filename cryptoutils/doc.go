// Package cryptoutils implements the wallet side of name registration: the
// EIP-712 UserNameProof digest, its signature with a local secp256k1 key and
// recovery of the signing address.
//
// The typed data follows the fname registry's domain:
//
//	EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)
//	UserNameProof(string name,uint256 timestamp,address owner)
//
// with name "Farcaster name verification", version "1", chainId 1 and the
// verifying contract 0xe3be01d99baa8db9905b33a3ca391238234b79d1.
//
// Signatures are 65 bytes (r || s || v) with v normalized to 27 or 28, and are
// deterministic for a given key and proof (RFC 6979 nonces).
package cryptoutils
