// Package host defines the cryptographic primitives the protocol treats
// as host-provided collaborators rather than core logic: ed25519
// signature verification for the gateway's weighted multi-sig proof path.
// The protocol packages depend only on the Host interface; they never
// implement signature math themselves.
package host

// Host is the set of cryptographic primitives the gateway's proof
// validation needs but does not implement. A production integration wires
// this to whatever runtime actually performs the verification (a VM host
// function, a precompile, a syscall); tests use the Default implementation.
type Host interface {
	// Ed25519Verify reports whether sig is a valid ed25519 signature by
	// pubKey over msg. pubKey must be 32 bytes and sig must be 64 bytes;
	// implementations may return false rather than erroring on malformed
	// input, since the gateway treats any verification failure identically.
	Ed25519Verify(pubKey, msg, sig []byte) bool
}
