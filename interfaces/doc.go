// Package interfaces defines the shared types and component contracts of the
// registrar, separating them from their implementations.
//
// # Types
//
// FID: the numeric account identifier minted by the IdGateway contract.
//
// UserNameProof: the EIP-712 claim "owner claims name as of timestamp" that the
// fname registry verifies before assigning a name to an FID.
//
// Registration: the outcome of buying an FID on chain.
//
// # Component contracts
//
// NameProofSigner signs UserNameProofs with the wallet key, Clock provides the
// claim timestamp and FIDRegistrar buys identifiers on chain. The registry
// transport contract lives next to its wire types in package api.
package interfaces
