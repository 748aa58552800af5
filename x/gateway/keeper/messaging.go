package keeper

import (
	"bytes"

	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/crypto"
	"github.com/axelar-network/interchain-go/x/gateway/types"
)

func approvalKey(sourceChain, messageID string) []byte {
	out := make([]byte, 0, len(sourceChain)+1+len(messageID))
	out = append(out, []byte(sourceChain)...)
	out = append(out, 0x00)
	out = append(out, []byte(messageID)...)
	return out
}

func (k Keeper) approvals(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(k.store(ctx), types.KeyPrefixApproval)
}

func (k Keeper) approval(ctx sdk.Context, sourceChain, messageID string) types.MessageApproval {
	bz := k.approvals(ctx).Get(approvalKey(sourceChain, messageID))
	return types.UnmarshalMessageApproval(bz)
}

func (k Keeper) setApproval(ctx sdk.Context, sourceChain, messageID string, approval types.MessageApproval) {
	k.approvals(ctx).Set(approvalKey(sourceChain, messageID), approval.Marshal())
}

// CallContract emits a ContractCalled event for an outbound cross-chain
// call; it performs no state mutation of its own. The gateway is a log of
// intent, not a message queue.
func (k Keeper) CallContract(ctx sdk.Context, caller sdk.AccAddress, destinationChain, destinationAddress string, payload []byte) error {
	payloadHash := crypto.Keccak256(payload)
	ctx.EventManager().EmitEvent(types.NewEventContractCalled(caller, destinationChain, destinationAddress, payload, payloadHash))
	return nil
}

// ApproveMessages validates a proof over a batch of inbound messages and
// marks each one Approved, skipping (without error) any message that has
// already left the NotApproved state; approval is idempotent under replay.
func (k Keeper) ApproveMessages(ctx sdk.Context, messages []types.Message, proof types.Proof) error {
	if err := k.access.RequireNotPaused(ctx); err != nil {
		return err
	}
	if len(messages) == 0 {
		return types.ErrEmptyMessages
	}

	dataHash := types.HashApproveMessagesBatch(messages)
	if _, err := k.ValidateProof(ctx, dataHash, proof); err != nil {
		return err
	}

	approved := 0
	for _, m := range messages {
		existing := k.approval(ctx, m.SourceChain, m.MessageID)
		if existing.Status != types.ApprovalNotApproved {
			continue
		}
		k.setApproval(ctx, m.SourceChain, m.MessageID, types.MessageApproval{
			Status: types.ApprovalApproved,
			Hash:   m.Hash(),
		})
		ctx.EventManager().EmitEvent(types.NewEventMessageApproved(m))
		approved++
	}
	k.Logger(ctx).Info("approved messages", "batch", len(messages), "approved", approved)
	return nil
}

// ValidateMessage is the executor-facing entry point: the caller (the
// contract that is about to act on the message) supplies itself as the
// message's ContractAddress and the fields it received, and the gateway
// confirms the message was approved for exactly that contract and payload,
// transitioning Approved -> Executed at most once.
func (k Keeper) ValidateMessage(
	ctx sdk.Context,
	caller sdk.AccAddress,
	sourceChain, messageID, sourceAddress string,
	payloadHash [32]byte,
) (bool, error) {
	m := types.Message{
		SourceChain:     sourceChain,
		MessageID:       messageID,
		SourceAddress:   sourceAddress,
		ContractAddress: caller,
		PayloadHash:     payloadHash,
	}

	existing := k.approval(ctx, sourceChain, messageID)
	if existing.Status != types.ApprovalApproved {
		return false, nil
	}
	expected := m.Hash()
	if !bytes.Equal(existing.Hash[:], expected[:]) {
		return false, nil
	}

	k.setApproval(ctx, sourceChain, messageID, types.MessageApproval{Status: types.ApprovalExecuted})
	k.Logger(ctx).Info("message executed", "source_chain", sourceChain, "message_id", messageID)
	ctx.EventManager().EmitEvent(types.NewEventMessageExecuted(m))
	return true, nil
}

// IsMessageApproved reports whether a message is currently in the Approved
// state (it has not yet been executed).
func (k Keeper) IsMessageApproved(ctx sdk.Context, sourceChain, messageID, sourceAddress string, contractAddress sdk.AccAddress, payloadHash [32]byte) bool {
	m := types.Message{
		SourceChain:     sourceChain,
		MessageID:       messageID,
		SourceAddress:   sourceAddress,
		ContractAddress: contractAddress,
		PayloadHash:     payloadHash,
	}
	existing := k.approval(ctx, sourceChain, messageID)
	expected := m.Hash()
	return existing.Status == types.ApprovalApproved && bytes.Equal(existing.Hash[:], expected[:])
}

// IsMessageExecuted reports whether a message has already been executed.
func (k Keeper) IsMessageExecuted(ctx sdk.Context, sourceChain, messageID string) bool {
	return k.approval(ctx, sourceChain, messageID).Status == types.ApprovalExecuted
}
