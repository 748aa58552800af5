package types

import "github.com/axelar-network/interchain-go/crypto"

// HashApproveMessagesBatch computes keccak256(ApproveMessages || messages),
// the data hash approve_messages proves against.
func HashApproveMessagesBatch(messages []Message) [32]byte {
	out := []byte{byte(CommandTypeApproveMessages)}
	for _, m := range messages {
		out = append(out, m.Marshal()...)
	}
	return crypto.Keccak256(out)
}

// HashRotateSignersBatch computes keccak256(RotateSigners || new_set), the
// data hash a rotate_signers proof proves against.
func HashRotateSignersBatch(newSigners WeightedSigners) [32]byte {
	out := append([]byte{byte(CommandTypeRotateSigners)}, newSigners.Marshal()...)
	return crypto.Keccak256(out)
}
