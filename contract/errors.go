package contract

import "vaultdao/sdk"

// Revert symbols form the contract's error taxonomy. Every precondition
// failure aborts the whole call with no partial state change; the symbols
// give callers something machine-readable to branch on.
const (
	symInsufficientBalance = "insufficient_balance"
	symInsufficientStake   = "insufficient_stake"
	symNotFound            = "not_found"
	symTimeLockNotElapsed  = "time_lock_not_elapsed"
	symInvalidUnstake      = "invalid_unstake_amount"
	symInvalidVoteTime     = "invalid_vote_time"
	symAlreadyVoted        = "already_voted"
	symNotAdmin            = "not_admin"
	symMinStakeRequired    = "min_stake_required"
	symOverflow            = "overflow"
	symUnderflow           = "underflow"
)

// revertWith is the single funnel to the host revert binding.
func revertWith(msg, symbol string) {
	sdk.Revert(msg, symbol)
}

// abortMsg handles malformed input and programmer errors that carry no
// symbol worth branching on.
func abortMsg(msg string) {
	sdk.Abort(msg)
}
