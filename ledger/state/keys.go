package state

import (
	"encoding/binary"

	"github.com/helioshare/helioshare/common"
)

//
// ------------------------- Ledger State Keys -------------------------
//

// NextProjectIDKey returns the key for the sequential project id counter
func NextProjectIDKey() common.Bytes {
	return common.Bytes("ls/nextid")
}

// HeldFundsKey returns the key for the process-wide held-funds total
func HeldFundsKey() common.Bytes {
	return common.Bytes("ls/funds")
}

// ProjectKey constructs the state key for the given project id
func ProjectKey(projectID uint64) common.Bytes {
	return appendUint64(common.Bytes("ls/p/"), projectID)
}

// ProjectMetadataKey constructs the state key for the project display metadata
func ProjectMetadataKey(projectID uint64) common.Bytes {
	return appendUint64(common.Bytes("ls/pm/"), projectID)
}

// EscrowKey constructs the state key for the project sales escrow
func EscrowKey(projectID uint64) common.Bytes {
	return appendUint64(common.Bytes("ls/esc/"), projectID)
}

// BalanceKey constructs the state key for a holder's share balance
func BalanceKey(projectID uint64, holder common.Address) common.Bytes {
	return append(appendUint64(common.Bytes("ls/b/"), projectID), holder[:]...)
}

// RewardCheckpointKey constructs the state key for a holder's reward checkpoint
func RewardCheckpointKey(projectID uint64, holder common.Address) common.Bytes {
	return append(appendUint64(common.Bytes("ls/rc/"), projectID), holder[:]...)
}

func appendUint64(prefix common.Bytes, v uint64) common.Bytes {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(prefix, buf[:]...)
}
