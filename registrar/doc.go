// Package registrar orchestrates claiming a Farcaster name.
//
// A run takes a Target:
//
//   - NewRegistration buys a fresh FID through the chain client and then
//     claims the name for it.
//   - ExistingFID claims the name for an FID the wallet already owns, without
//     any chain interaction.
//
// The claim step reads the clock, signs a UserNameProof for (name, timestamp,
// wallet address) and posts it to the registry as a transfer from FID 0.
// Steps run strictly in sequence and the first error aborts the run.
package registrar
