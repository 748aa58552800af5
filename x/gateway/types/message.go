package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/crypto"
)

// Message is an inbound cross-chain message awaiting or holding an
// approval. Its identity on the local chain is (SourceChain, MessageID).
type Message struct {
	SourceChain     string
	MessageID       string
	SourceAddress   string
	ContractAddress sdk.AccAddress
	PayloadHash     [32]byte
}

// Marshal is the canonical serialization hashed to bind an approval to the
// exact message that produced it.
func (m Message) Marshal() []byte {
	out := make([]byte, 0)
	out = append(out, lengthPrefixed(m.SourceChain)...)
	out = append(out, lengthPrefixed(m.MessageID)...)
	out = append(out, lengthPrefixed(m.SourceAddress)...)
	out = append(out, lengthPrefixed(string(m.ContractAddress))...)
	out = append(out, m.PayloadHash[:]...)
	return out
}

func (m Message) Hash() [32]byte {
	return crypto.Keccak256(m.Marshal())
}

func lengthPrefixed(s string) []byte {
	b := []byte(s)
	out := make([]byte, 8+len(b))
	putUint64BE(out[:8], uint64(len(b)))
	copy(out[8:], b)
	return out
}

func putUint64BE(dst []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// CommandType prefixes a batch payload before hashing, distinguishing an
// approve-messages batch from a rotate-signers batch.
type CommandType byte

const (
	CommandTypeApproveMessages CommandType = iota
	CommandTypeRotateSigners
)

// ApprovalStatus is the tagged state { NotApproved | Approved(hash) |
// Executed }: a sum type, not a pair of booleans.
type ApprovalStatus byte

const (
	ApprovalNotApproved ApprovalStatus = iota
	ApprovalApproved
	ApprovalExecuted
)

// MessageApproval is the persisted form of MessageApprovalState: the status
// tag plus, for Approved, the message hash the approval is bound to.
type MessageApproval struct {
	Status ApprovalStatus
	Hash   [32]byte
}

func (a MessageApproval) Marshal() []byte {
	out := make([]byte, 33)
	out[0] = byte(a.Status)
	copy(out[1:], a.Hash[:])
	return out
}

func UnmarshalMessageApproval(bz []byte) MessageApproval {
	var a MessageApproval
	if len(bz) == 0 {
		return a
	}
	a.Status = ApprovalStatus(bz[0])
	copy(a.Hash[:], bz[1:])
	return a
}
