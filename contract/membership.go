package contract

import "vaultdao/sdk"

// -----------------------------------------------------------------------------
// Membership registry
// -----------------------------------------------------------------------------

// joinMember inserts the membership row if absent. Idempotent; returns true
// only when a new row was written.
func joinMember(daoID uint64, addr sdk.Address, now int64) bool {
	if _, ok := loadMemberRow(daoID, addr); ok {
		return false
	}
	saveMemberRow(daoID, &MemberRow{Address: addr, JoinedAt: now})
	addMemberToIndex(daoID, addr)
	setTotalMembers(daoID, totalMembers(daoID)+1)
	emitMemberJoined(daoID, addr)
	return true
}

// leaveMember drops the membership row if present. Idempotent like join.
func leaveMember(daoID uint64, addr sdk.Address) bool {
	if _, ok := loadMemberRow(daoID, addr); !ok {
		return false
	}
	deleteMemberRow(daoID, addr)
	removeMemberFromIndex(daoID, addr)
	if n := totalMembers(daoID); n > 0 {
		setTotalMembers(daoID, n-1)
	}
	emitMemberLeft(daoID, addr)
	return true
}

// isMemberOf decides membership fresh on every call. The admin escape hatch
// wins outright; everyone else needs a stored row AND live stake at or above
// the join threshold, so a stale row alone never grants membership.
func isMemberOf(dao *DaoRecord, addr sdk.Address) bool {
	if isAdmin(dao, addr) {
		return true
	}
	cfg := loadMembershipConfig(dao.ID)
	if cfg == nil {
		return false
	}
	if _, ok := loadMemberRow(dao.ID, addr); !ok {
		return false
	}
	return stakedBalance(dao.ID, addr) >= cfg.MinStakeToJoin
}

// canProposeIn applies the proposal threshold on top of membership. Admins
// pass unconditionally.
func canProposeIn(dao *DaoRecord, addr sdk.Address) bool {
	if isAdmin(dao, addr) {
		return true
	}
	if !isMemberOf(dao, addr) {
		return false
	}
	cfg := mustLoadMembershipConfig(dao.ID)
	return stakedBalance(dao.ID, addr) >= cfg.MinStakeToPropose
}

// JoinDao lets an account with sufficient stake opt in explicitly, without
// waiting for the next stake call to auto-join it.
// Example payload: {"dao_id":0}
//
//go:wasmexport membership_join
func JoinDao(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	sender := getSenderAddress()

	cfg := mustLoadMembershipConfig(dao.ID)
	balance := stakedBalance(dao.ID, sender)
	if balance < cfg.MinStakeToJoin {
		revertWith("staked balance below join threshold", symMinStakeRequired)
	}
	if joinMember(dao.ID, sender, nowUnix()) {
		recordActivity("join", dao.ID, sender, balance)
	}
	return strptr("ok")
}

// LeaveDao drops the sender's membership row. Stake stays untouched.
// Example payload: {"dao_id":0}
//
//go:wasmexport membership_leave
func LeaveDao(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	sender := getSenderAddress()
	if leaveMember(dao.ID, sender) {
		recordActivity("leave", dao.ID, sender, stakedBalance(dao.ID, sender))
	}
	return strptr("ok")
}

// UpdateMinStake changes the join threshold. Existing members are not
// swept; their status simply re-evaluates on the next is_member check.
// Example payload: {"dao_id":0,"amount":250}
//
//go:wasmexport membership_update_min_stake
func UpdateMinStake(payload *string) *string {
	requireInitialized()
	args := decodeThresholdArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	requireAdmin(dao, getSenderAddress())

	cfg := mustLoadMembershipConfig(dao.ID)
	prev := cfg.MinStakeToJoin
	cfg.MinStakeToJoin = args.Amount
	saveMembershipConfig(dao.ID, cfg)
	emitMinStakeUpdated(dao.ID, prev, args.Amount)
	return strptr("ok")
}

// UpdateMinProposalStake changes the proposal threshold.
// Example payload: {"dao_id":0,"amount":1000}
//
//go:wasmexport membership_update_min_proposal_stake
func UpdateMinProposalStake(payload *string) *string {
	requireInitialized()
	args := decodeThresholdArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	requireAdmin(dao, getSenderAddress())

	cfg := mustLoadMembershipConfig(dao.ID)
	prev := cfg.MinStakeToPropose
	cfg.MinStakeToPropose = args.Amount
	saveMembershipConfig(dao.ID, cfg)
	emitMinProposalStakeUpdated(dao.ID, prev, args.Amount)
	return strptr("ok")
}

// RemoveInactiveMember lets the admin evict a row whose stake fell below the
// join threshold, for instance after the threshold was raised. Accounts that
// still meet the threshold cannot be evicted this way.
// Example payload: {"dao_id":0,"account":"hive:bob"}
//
//go:wasmexport membership_remove_inactive
func RemoveInactiveMember(payload *string) *string {
	requireInitialized()
	args := decodeAccountArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	sender := getSenderAddress()
	requireAdmin(dao, sender)

	cfg := mustLoadMembershipConfig(dao.ID)
	if stakedBalance(dao.ID, args.Account) >= cfg.MinStakeToJoin {
		abortMsg("member meets the join threshold")
	}
	if leaveMember(dao.ID, args.Account) {
		emitMemberRemoved(dao.ID, args.Account, sender)
	}
	return strptr("ok")
}
