package types

import (
	"math/big"

	"github.com/helioshare/helioshare/common"
)

// Precision is the fixed-point scaling factor of the reward-per-share
// accumulator. The per-deposit floor division by the minted share count is
// the sole source of rounding loss; scaling by 1e18 keeps that loss below
// one wei per minted share per deposit.
var Precision = big.NewInt(1e18)

// ZeroAddress is the mint-source / burn-sink sentinel of the share ledger.
var ZeroAddress = common.Address{}

// MaxProjectsPerBatch bounds the project id list of batched operations
// (share transfers, batch claims, portfolio queries).
const MaxProjectsPerBatch = 128
