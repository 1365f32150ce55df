package types

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DomainVersion is the EIP-712 domain version of every token.
const DomainVersion = "1"

var (
	// PermitTypehash is keccak256 of the Permit struct type.
	PermitTypehash = crypto.Keccak256Hash([]byte("Permit(address owner,address spender,uint256 value,uint256 nonce,uint256 deadline)"))

	// DomainTypehash is keccak256 of the EIP-712 domain type.
	DomainTypehash = crypto.Keccak256Hash([]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))

	bytes32Type = mustNewType("bytes32")
	uint256Type = mustNewType("uint256")
	addressType = mustNewType("address")

	domainArgs = abi.Arguments{
		{Type: bytes32Type}, {Type: bytes32Type}, {Type: bytes32Type}, {Type: uint256Type}, {Type: addressType},
	}
	permitArgs = abi.Arguments{
		{Type: bytes32Type}, {Type: addressType}, {Type: addressType}, {Type: uint256Type}, {Type: uint256Type}, {Type: uint256Type},
	}
)

func mustNewType(name string) abi.Type {
	t, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(err)
	}
	return t
}

// DomainSeparator returns the EIP-712 domain separator of a token deployed at
// verifyingContract on chainID.
func DomainSeparator(name string, chainID *big.Int, verifyingContract common.Address) (common.Hash, error) {
	encoded, err := domainArgs.Pack(
		DomainTypehash,
		crypto.Keccak256Hash([]byte(name)),
		crypto.Keccak256Hash([]byte(DomainVersion)),
		chainID,
		verifyingContract,
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("encode domain: %w", err)
	}
	return crypto.Keccak256Hash(encoded), nil
}

// PermitDigest returns the EIP-712 digest an owner signs to approve spender.
func PermitDigest(domainSeparator common.Hash, owner, spender common.Address, value math.Int, nonce uint64, deadline math.Int) (common.Hash, error) {
	encoded, err := permitArgs.Pack(
		PermitTypehash,
		owner,
		spender,
		value.BigInt(),
		new(big.Int).SetUint64(nonce),
		deadline.BigInt(),
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("encode permit: %w", err)
	}
	structHash := crypto.Keccak256Hash(encoded)
	return crypto.Keccak256Hash([]byte{0x19, 0x01}, domainSeparator.Bytes(), structHash.Bytes()), nil
}

// RecoverSigner returns the address that produced (v, r, s) over digest.
// v may be given as 27/28 or 0/1. High-s signatures are rejected.
func RecoverSigner(digest common.Hash, v uint8, r, s common.Hash) (common.Address, error) {
	if v >= 27 {
		v -= 27
	}
	if !crypto.ValidateSignatureValues(v, r.Big(), s.Big(), true) {
		return common.Address{}, ErrInvalidSignature.Wrap("malformed signature values")
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig[:32], r.Bytes())
	copy(sig[32:64], s.Bytes())
	sig[64] = v

	pub, err := crypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return common.Address{}, ErrInvalidSignature.Wrap(err.Error())
	}
	return crypto.PubkeyToAddress(*pub), nil
}
