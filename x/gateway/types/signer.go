package types

import (
	"bytes"
	sdkmath "cosmossdk.io/math"

	"github.com/axelar-network/interchain-go/crypto"
	"github.com/axelar-network/interchain-go/utils"
)

// WeightedSigner is a single member of a weighted multi-signature quorum.
type WeightedSigner struct {
	Signer [32]byte
	Weight sdkmath.Int
}

// WeightedSigners is a weighted multi-sig quorum: an ordered signer set, a
// threshold and a rotation nonce. Its identity is the keccak256 hash of its
// canonical serialization.
type WeightedSigners struct {
	Signers   []WeightedSigner
	Threshold sdkmath.Int
	Nonce     [32]byte
}

// Validate enforces the signer-set invariants: non-empty,
// strictly ascending by public key, every weight non-zero, the weight sum
// fits in u128, and the threshold lies in [1, Σweights].
func (s WeightedSigners) Validate() error {
	if len(s.Signers) == 0 {
		return ErrEmptySigners
	}

	sum := sdkmath.ZeroInt()
	for i, signer := range s.Signers {
		if !utils.IsValidUint128(signer.Weight) || signer.Weight.IsZero() {
			return ErrInvalidWeight
		}
		if i > 0 && bytes.Compare(s.Signers[i-1].Signer[:], signer.Signer[:]) >= 0 {
			return ErrInvalidSigners
		}

		next, err := utils.AddUint128(sum, signer.Weight)
		if err != nil {
			return ErrWeightOverflow
		}
		sum = next
	}

	if !utils.IsValidUint128(s.Threshold) || s.Threshold.IsZero() || s.Threshold.GT(sum) {
		return ErrInvalidThreshold
	}
	return nil
}

// TotalWeight returns Σ weights. Callers must have already validated the
// set (otherwise the sum may not be meaningful).
func (s WeightedSigners) TotalWeight() sdkmath.Int {
	sum := sdkmath.ZeroInt()
	for _, signer := range s.Signers {
		sum = sum.Add(signer.Weight)
	}
	return sum
}

// Marshal produces the canonical byte encoding whose keccak256 is the
// signer set's identity: each signer's 32-byte key and 32-byte
// big-endian weight in order, followed by the 32-byte threshold and the
// 32-byte nonce.
func (s WeightedSigners) Marshal() []byte {
	out := make([]byte, 0, len(s.Signers)*64+64)
	for _, signer := range s.Signers {
		out = append(out, signer.Signer[:]...)
		out = append(out, leftPad32(signer.Weight)...)
	}
	out = append(out, leftPad32(s.Threshold)...)
	out = append(out, s.Nonce[:]...)
	return out
}

// Hash returns keccak256(Marshal()), the signer set's identity used as the
// gateway's epoch-binding key.
func (s WeightedSigners) Hash() [32]byte {
	return crypto.Keccak256(s.Marshal())
}

func leftPad32(i sdkmath.Int) []byte {
	out := make([]byte, 32)
	if i.IsNil() {
		return out
	}
	b := i.BigInt().Bytes()
	copy(out[32-len(b):], b)
	return out
}
