package contract

import "vaultdao/sdk"

// -----------------------------------------------------------------------------
// Staking ledger
// -----------------------------------------------------------------------------

// Stake escrows tokens from the sender into a DAO vault and credits the
// sender's position. Every successful call, including top-ups, refreshes the
// position's lock timestamp. Crossing the join threshold auto-joins the
// sender as a member.
// Example payload: {"dao_id":0,"amount":500}
//
//go:wasmexport staking_stake
func Stake(payload *string) *string {
	requireInitialized()
	args := decodeStakeArgs(requirePayload(payload))
	if args.Amount == 0 {
		abortMsg("stake amount must be greater than zero")
	}
	mustLoadDao(args.DaoID)

	sender := getSenderAddress()
	transferable := amountToInt64(args.Amount)
	if sdk.GetBalance(sender, StakingAsset) < transferable {
		revertWith("account balance below stake amount", symInsufficientBalance)
	}
	sdk.HiveDraw(transferable, StakingAsset)

	now := nowUnix()

	entry := loadStakeEntry(args.DaoID, sender)
	firstEntry := entry == nil
	if firstEntry {
		entry = &StakeEntry{}
	}
	entry.Balance = checkedAdd(entry.Balance, args.Amount)
	entry.LastStakeTime = now
	saveStakeEntry(args.DaoID, sender, entry)

	profile := loadStakerProfile(sender)
	if profile == nil {
		profile = &StakerProfile{}
	}
	profile.TotalStaked = checkedAdd(profile.TotalStaked, args.Amount)
	saveStakerProfile(sender, profile)

	if _, present := registryAmount(args.DaoID, sender); !present {
		setTotalStakers(args.DaoID, totalStakers(args.DaoID)+1)
	}
	setRegistryAmount(args.DaoID, sender, entry.Balance)

	vault := loadVault(args.DaoID)
	vault.Balance = checkedAdd(vault.Balance, args.Amount)
	saveVault(args.DaoID, vault)

	cfg := mustLoadMembershipConfig(args.DaoID)
	if entry.Balance >= cfg.MinStakeToJoin {
		joinMember(args.DaoID, sender, now)
	}

	emitStaked(args.DaoID, sender, args.Amount, entry.Balance, now)
	recordActivity("stake", args.DaoID, sender, args.Amount)
	return strptr(UInt64ToString(uint64(entry.Balance)))
}

// Unstake returns tokens from the vault to the sender. The position's full
// cooldown must have elapsed since the most recent stake. Withdrawing the
// whole balance prunes the entry and its registry mirror; dropping below the
// join threshold auto-leaves the membership.
// Example payload: {"dao_id":0,"amount":200}
//
//go:wasmexport staking_unstake
func Unstake(payload *string) *string {
	requireInitialized()
	args := decodeStakeArgs(requirePayload(payload))
	if args.Amount == 0 {
		abortMsg("unstake amount must be greater than zero")
	}
	mustLoadDao(args.DaoID)

	sender := getSenderAddress()
	entry := loadStakeEntry(args.DaoID, sender)
	if entry == nil {
		revertWith("no stake entry for account", symNotFound)
	}
	profile := loadStakerProfile(sender)
	if profile == nil {
		revertWith("no staker profile for account", symNotFound)
	}
	if args.Amount > entry.Balance {
		revertWith("unstake amount exceeds staked balance", symInvalidUnstake)
	}

	now := nowUnix()
	if now < entry.LastStakeTime+MinStakingPeriod {
		revertWith("staking period has not elapsed", symTimeLockNotElapsed)
	}

	sdk.HiveTransfer(sender, amountToInt64(args.Amount), StakingAsset)

	entry.Balance = checkedSub(entry.Balance, args.Amount)
	profile.TotalStaked = checkedSub(profile.TotalStaked, args.Amount)
	saveStakerProfile(sender, profile)

	if entry.Balance == 0 {
		deleteStakeEntry(args.DaoID, sender)
		deleteRegistryEntry(args.DaoID, sender)
		if n := totalStakers(args.DaoID); n > 0 {
			setTotalStakers(args.DaoID, n-1)
		}
	} else {
		saveStakeEntry(args.DaoID, sender, entry)
		setRegistryAmount(args.DaoID, sender, entry.Balance)
	}

	vault := loadVault(args.DaoID)
	vault.Balance = checkedSub(vault.Balance, args.Amount)
	saveVault(args.DaoID, vault)

	cfg := mustLoadMembershipConfig(args.DaoID)
	if entry.Balance < cfg.MinStakeToJoin {
		leaveMember(args.DaoID, sender)
	}

	emitUnstaked(args.DaoID, sender, args.Amount, entry.Balance, now)
	recordActivity("unstake", args.DaoID, sender, args.Amount)
	return strptr(UInt64ToString(uint64(entry.Balance)))
}
