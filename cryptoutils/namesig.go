package cryptoutils

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/ruteri/fid-registrar/interfaces"
)

// The fname registry verifies proofs against this domain. ChainID is mainnet
// even though FIDs live on OP Mainnet.
const (
	NameProofDomainName    = "Farcaster name verification"
	NameProofDomainVersion = "1"
	NameProofDomainChainID = 1
	NameProofPrimaryType   = "UserNameProof"
)

var NameProofVerifyingContract = common.HexToAddress("0xe3be01d99baa8db9905b33a3ca391238234b79d1")

const signatureLength = crypto.SignatureLength

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidSignature  = errors.New("invalid signature")
)

var nameProofTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	NameProofPrimaryType: {
		{Name: "name", Type: "string"},
		{Name: "timestamp", Type: "uint256"},
		{Name: "owner", Type: "address"},
	},
}

// NameProofTypedData wraps proof into the EIP-712 envelope used for signing.
func NameProofTypedData(proof interfaces.UserNameProof) (apitypes.TypedData, error) {
	if proof.Timestamp == nil || proof.Timestamp.Sign() < 0 {
		return apitypes.TypedData{}, fmt.Errorf("invalid name proof timestamp %v", proof.Timestamp)
	}

	return apitypes.TypedData{
		Types:       nameProofTypes,
		PrimaryType: NameProofPrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              NameProofDomainName,
			Version:           NameProofDomainVersion,
			ChainId:           math.NewHexOrDecimal256(NameProofDomainChainID),
			VerifyingContract: NameProofVerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"name":      proof.Name,
			"timestamp": (*math.HexOrDecimal256)(new(big.Int).Set(proof.Timestamp)),
			"owner":     proof.Owner.Hex(),
		},
	}, nil
}

// NameProofHash computes keccak256("\x19\x01" || domainSeparator || hashStruct(proof)).
func NameProofHash(proof interfaces.UserNameProof) (common.Hash, error) {
	typedData, err := NameProofTypedData(proof)
	if err != nil {
		return common.Hash{}, err
	}

	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return common.Hash{}, fmt.Errorf("could not hash name proof: %w", err)
	}
	return common.BytesToHash(digest), nil
}

// NameProofSigner signs name proofs with a local secp256k1 key.
type NameProofSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewNameProofSigner(key *ecdsa.PrivateKey) (*NameProofSigner, error) {
	if key == nil || key.D == nil {
		return nil, ErrInvalidPrivateKey
	}
	return &NameProofSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// NameProofSignerFromHex parses a hex encoded secp256k1 key, with or without 0x.
func NameProofSignerFromHex(hexKey string) (*NameProofSigner, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return NewNameProofSigner(key)
}

func (s *NameProofSigner) Address() common.Address {
	return s.address
}

// PrivateKey exposes the key for the transaction signer of the chain client.
func (s *NameProofSigner) PrivateKey() *ecdsa.PrivateKey {
	return s.key
}

// SignNameProof returns r||s||v with v in {27, 28}, the form the registry expects.
func (s *NameProofSigner) SignNameProof(proof interfaces.UserNameProof) ([]byte, error) {
	digest, err := NameProofHash(proof)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(digest.Bytes(), s.key)
	if err != nil {
		return nil, fmt.Errorf("could not sign name proof: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// RecoverNameProofSigner returns the address that produced sig over proof.
func RecoverNameProofSigner(proof interfaces.UserNameProof, sig []byte) (common.Address, error) {
	if len(sig) != signatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, signatureLength, len(sig))
	}

	normalized := make([]byte, signatureLength)
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}
	if normalized[crypto.RecoveryIDOffset] > 1 {
		return common.Address{}, fmt.Errorf("%w: bad recovery id %d", ErrInvalidSignature, sig[crypto.RecoveryIDOffset])
	}

	digest, err := NameProofHash(proof)
	if err != nil {
		return common.Address{}, err
	}

	pubkey, err := crypto.SigToPub(digest.Bytes(), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pubkey), nil
}

// EncodeSignature renders sig as lowercase 0x-prefixed hex.
func EncodeSignature(sig []byte) string {
	return hexutil.Encode(sig)
}

// EncodeAddress renders addr as lowercase 0x-prefixed hex, without the
// EIP-55 checksum casing.
func EncodeAddress(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
