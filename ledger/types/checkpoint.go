package types

import (
	"fmt"
	"math/big"
)

// RewardCheckpoint records, per (project, holder), the accumulator value the
// holder last reconciled against, the revenue earned but not yet claimed,
// and the lifetime claimed total. Checkpoints are created lazily on first
// balance touch and never deleted, only zeroed on claim.
type RewardCheckpoint struct {
	PaidPerShare    *big.Int `json:"paid_per_share"` // scaled by Precision
	PendingWei      *big.Int `json:"pending_wei"`
	TotalClaimedWei *big.Int `json:"total_claimed_wei"`
}

// NewRewardCheckpoint creates a zeroed checkpoint.
func NewRewardCheckpoint() *RewardCheckpoint {
	return &RewardCheckpoint{
		PaidPerShare:    big.NewInt(0),
		PendingWei:      big.NewInt(0),
		TotalClaimedWei: big.NewInt(0),
	}
}

// NoNil replaces nil big.Int fields with zero values.
func (cp *RewardCheckpoint) NoNil() *RewardCheckpoint {
	if cp.PaidPerShare == nil {
		cp.PaidPerShare = big.NewInt(0)
	}
	if cp.PendingWei == nil {
		cp.PendingWei = big.NewInt(0)
	}
	if cp.TotalClaimedWei == nil {
		cp.TotalClaimedWei = big.NewInt(0)
	}
	return cp
}

func (cp *RewardCheckpoint) String() string {
	if cp == nil {
		return "nil-RewardCheckpoint"
	}
	return fmt.Sprintf("RewardCheckpoint{paid:%v pending:%v claimed:%v}",
		cp.PaidPerShare, cp.PendingWei, cp.TotalClaimedWei)
}
