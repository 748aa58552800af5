package crypto

import "github.com/ethereum/go-ethereum/crypto"

// Keccak256 hashes the concatenation of data using keccak256. It is the
// canonical hash function for signer-set identity, message identity, gateway
// batch payloads and ITS token-id derivation.
func Keccak256(data ...[]byte) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(data...))
	return out
}
