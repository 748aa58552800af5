package keeper

import (
	"encoding/hex"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/crypto"
	"github.com/axelar-network/interchain-go/x/gateway/types"
)

// Initialize sets the gateway's immutable configuration and seeds one or
// more initial signer sets at epoch 1, 2, ... in the order given. It must
// only be called from a contract's constructor or genesis path; it
// performs no authorization check of its own.
func (k Keeper) Initialize(
	ctx sdk.Context,
	domainSeparator [32]byte,
	minimumRotationDelay uint64,
	previousSignersRetention uint64,
	initialSigners []types.WeightedSigners,
) error {
	if len(initialSigners) == 0 {
		return types.ErrEmptySigners
	}

	store := k.store(ctx)
	store.Set(types.KeyDomainSeparator, domainSeparator[:])
	store.Set(types.KeyMinimumRotationDelay, encodeUint64(minimumRotationDelay))
	store.Set(types.KeyPreviousRetention, encodeUint64(previousSignersRetention))

	for _, signers := range initialSigners {
		if err := k.rotateSigners(ctx, signers, false); err != nil {
			return err
		}
	}
	return nil
}

// validateSignerSet checks set-level invariants and that the set's hash has
// not already been bound to a prior epoch.
func (k Keeper) validateSignerSet(ctx sdk.Context, signers types.WeightedSigners) error {
	if err := signers.Validate(); err != nil {
		return err
	}
	if _, bound := k.EpochBySignersHash(ctx, signers.Hash()); bound {
		return types.ErrDuplicateSigners
	}
	return nil
}

// rotateSigners is the internal rotation primitive: validate the new set,
// optionally enforce the minimum delay since the last rotation, bind it to
// the next epoch in both directions, and emit SignersRotated.
func (k Keeper) rotateSigners(ctx sdk.Context, newSigners types.WeightedSigners, enforceDelay bool) error {
	if err := k.validateSignerSet(ctx, newSigners); err != nil {
		return err
	}

	if enforceDelay {
		elapsed := uint64(ctx.BlockTime().Unix()) - k.LastRotationTimestamp(ctx)
		if elapsed < k.MinimumRotationDelay(ctx) {
			return types.ErrInsufficientRotationDelay
		}
	}

	epoch := k.CurrentEpoch(ctx) + 1
	hash := newSigners.Hash()
	k.bindEpoch(ctx, epoch, hash)
	k.setCurrentEpoch(ctx, epoch)
	k.setLastRotationTimestamp(ctx, uint64(ctx.BlockTime().Unix()))

	k.Logger(ctx).Info("signers rotated",
		"epoch", epoch,
		"signers_hash", hex.EncodeToString(hash[:]),
		"signer_count", len(newSigners.Signers),
	)
	ctx.EventManager().EmitEvent(types.NewEventSignersRotated(epoch, hash, newSigners))
	return nil
}

// RotateSigners is the public entry point for signer rotation. A proof
// over the new signer set must come from the current epoch's signers
// unless bypassDelay is set, in which case the operator may force a
// rotation through a retained (but not outdated) set and skip the minimum
// delay; the proof itself is never waived.
func (k Keeper) RotateSigners(
	ctx sdk.Context,
	caller sdk.AccAddress,
	newSigners types.WeightedSigners,
	proof types.Proof,
	bypassDelay bool,
) error {
	if bypassDelay {
		if err := k.access.RequireOperator(ctx, caller); err != nil {
			return err
		}
	}

	dataHash := types.HashRotateSignersBatch(newSigners)
	isLatest, err := k.ValidateProof(ctx, dataHash, proof)
	if err != nil {
		return err
	}
	if !bypassDelay && !isLatest {
		return types.ErrNotLatestSigners
	}

	return k.rotateSigners(ctx, newSigners, !bypassDelay)
}

// ValidateProof implements the proof-validation algorithm: reconstruct
// the claimed signer set, confirm it is known and within the
// retention window, recompute the message hash the proof must cover, and
// walk the signatures accumulating weight until the threshold is reached.
// It returns whether the proof was produced by the current (latest) epoch.
func (k Keeper) ValidateProof(ctx sdk.Context, dataHash [32]byte, proof types.Proof) (bool, error) {
	signers := proof.WeightedSigners()
	if err := signers.Validate(); err != nil {
		return false, err
	}

	signersHash := signers.Hash()
	epoch, bound := k.EpochBySignersHash(ctx, signersHash)
	if !bound {
		return false, types.ErrInvalidSignersHash
	}

	currentEpoch := k.CurrentEpoch(ctx)
	if epoch == 0 || currentEpoch < epoch {
		return false, types.ErrInvalidEpoch
	}
	age := currentEpoch - epoch
	if age > k.PreviousSignersRetention(ctx) {
		return false, types.ErrOutdatedSigners
	}

	domainSeparator := k.DomainSeparator(ctx)
	messageHash := crypto.Keccak256(domainSeparator[:], signersHash[:], dataHash[:])

	weight := sdkmath.ZeroInt()
	for _, s := range proof.Signers {
		if !s.Signature.IsSigned() {
			continue
		}
		sigBytes := s.Signature.Bytes()
		if !k.host.Ed25519Verify(s.WeightedSigner.Signer[:], messageHash[:], sigBytes[:]) {
			return false, types.ErrInvalidSignatures
		}
		weight = weight.Add(s.WeightedSigner.Weight)
		if weight.GTE(signers.Threshold) {
			return epoch == currentEpoch, nil
		}
	}

	return false, types.ErrInvalidSignatures
}
