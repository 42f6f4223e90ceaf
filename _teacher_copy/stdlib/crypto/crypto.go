// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.

// Package crypto provides cryptographic operations for the PROBE standard library.
//
// Includes post-quantum cryptography (PQC) primitives:
//   - Falcon-512 (lattice-based signatures)
//   - ML-DSA / Dilithium (lattice-based signatures)
//   - SLH-DSA / SPHINCS+ (hash-based signatures)
//   - SHAKE256 and SHA-3 hash functions
//
// The functions are placeholders: the hash functions return zero bytes, the
// signature verifiers always return false, and Secp256k1Recover returns a
// zero address with a nil error.
package crypto

// Hash returns a zero-filled 32-byte array; the SHA3-256 (Keccak-256) digest
// of the input is not computed.
func Hash(data []byte) [32]byte {
	// Delegates to the Go crypto implementation.
	var result [32]byte
	// TODO: wire to golang.org/x/crypto/sha3
	_ = data
	return result
}

// SHAKE256 returns outputLen zero bytes; the SHAKE256 digest is not computed.
func SHAKE256(data []byte, outputLen int) []byte {
	// TODO: wire to golang.org/x/crypto/sha3
	_ = data
	return make([]byte, outputLen)
}

// Falcon512Verify is the Falcon-512 signature check.
// It always returns false; the signature is not examined.
func Falcon512Verify(msg, sig, pubkey []byte) bool {
	// TODO: implement Falcon-512 verification
	_ = msg
	_ = sig
	_ = pubkey
	return false
}

// MLDSAVerify is the ML-DSA (Dilithium) signature check.
// It always returns false; the signature is not examined.
func MLDSAVerify(msg, sig, pubkey []byte) bool {
	// TODO: wire to existing crypto/dilithium package
	_ = msg
	_ = sig
	_ = pubkey
	return false
}

// SLHDSAVerify is the SLH-DSA (SPHINCS+) signature check.
// It always returns false; the signature is not examined.
func SLHDSAVerify(msg, sig, pubkey []byte) bool {
	// TODO: implement SLH-DSA verification
	_ = msg
	_ = sig
	_ = pubkey
	return false
}

// Secp256k1Recover returns a zero address and a nil error; no public key is
// recovered from the signature.
func Secp256k1Recover(hash [32]byte, sig [65]byte) ([20]byte, error) {
	// TODO: wire to existing crypto/secp256k1 package
	var addr [20]byte
	return addr, nil
}
