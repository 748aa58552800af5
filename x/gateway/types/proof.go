package types

import sdkmath "cosmossdk.io/math"

// Signature is the sum { Signed(64B) | Unsigned }: a proof signer either
// supplied a signature or deliberately abstained.
type Signature struct {
	signed bool
	bytes  [64]byte
}

func NewSignedSignature(sig [64]byte) Signature { return Signature{signed: true, bytes: sig} }
func NewUnsignedSignature() Signature           { return Signature{} }

func (s Signature) IsSigned() bool  { return s.signed }
func (s Signature) Bytes() [64]byte { return s.bytes }

// ProofSigner pairs a claimed weighted signer with its (possibly absent)
// signature over the proof's message hash.
type ProofSigner struct {
	WeightedSigner WeightedSigner
	Signature      Signature
}

// Proof reconstructs a claimed WeightedSigners and carries the signatures
// that should satisfy its threshold.
type Proof struct {
	Signers   []ProofSigner
	Threshold sdkmath.Int
	Nonce     [32]byte
}

// WeightedSigners reconstructs the WeightedSigners this proof claims to be
// signed by, preserving signer order.
func (p Proof) WeightedSigners() WeightedSigners {
	signers := make([]WeightedSigner, len(p.Signers))
	for i, s := range p.Signers {
		signers[i] = s.WeightedSigner
	}
	return WeightedSigners{Signers: signers, Threshold: p.Threshold, Nonce: p.Nonce}
}
