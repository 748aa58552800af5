package host

import "crypto/ed25519"

// Default is the stdlib-backed Host: ed25519 verification via the
// standard library.
type Default struct{}

var _ Host = Default{}

func (Default) Ed25519Verify(pubKey, msg, sig []byte) bool {
	if len(pubKey) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig)
}
