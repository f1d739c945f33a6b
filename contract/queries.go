package contract

import "github.com/CosmWasm/tinyjson/jwriter"

// Read-only exports. Responses are JSON objects built with jwriter so query
// clients never have to parse our binary state encoding.

func writerResult(w *jwriter.Writer) *string {
	data, err := w.BuildBytes()
	if err != nil {
		abortMsg("failed to build query response")
	}
	return strptr(string(data))
}

// GetStakerAmount returns the account's staked balance in one DAO.
// Example payload: {"dao_id":0,"account":"hive:alice"}
//
//go:wasmexport staking_get_staker
func GetStakerAmount(payload *string) *string {
	requireInitialized()
	args := decodeAccountArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"amount":`)
	w.Uint64(uint64(stakedBalance(args.DaoID, args.Account)))
	w.RawByte('}')
	return writerResult(w)
}

// GetTotalStaked returns the DAO vault balance, the sum of all positions.
// Example payload: {"dao_id":0}
//
//go:wasmexport staking_get_total
func GetTotalStaked(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"total":`)
	w.Uint64(uint64(loadVault(args.DaoID).Balance))
	w.RawByte('}')
	return writerResult(w)
}

// GetTotalStakers returns how many accounts hold a live position in the DAO.
// Example payload: {"dao_id":0}
//
//go:wasmexport staking_get_total_stakers
func GetTotalStakers(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"total":`)
	w.Uint64(totalStakers(args.DaoID))
	w.RawByte('}')
	return writerResult(w)
}

// IsMember evaluates the membership predicate for an account.
// Example payload: {"dao_id":0,"account":"hive:alice"}
//
//go:wasmexport membership_is_member
func IsMember(payload *string) *string {
	requireInitialized()
	args := decodeAccountArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"member":`)
	w.Bool(isMemberOf(dao, args.Account))
	w.RawByte('}')
	return writerResult(w)
}

// GetTotalMembers returns the stored member counter.
// Example payload: {"dao_id":0}
//
//go:wasmexport membership_get_total
func GetTotalMembers(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"total":`)
	w.Uint64(totalMembers(args.DaoID))
	w.RawByte('}')
	return writerResult(w)
}

// GetMembershipConfig returns both stake thresholds.
// Example payload: {"dao_id":0}
//
//go:wasmexport membership_get_config
func GetMembershipConfig(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)
	cfg := mustLoadMembershipConfig(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"min_stake_to_join":`)
	w.Uint64(uint64(cfg.MinStakeToJoin))
	w.RawString(`,"min_stake_to_propose":`)
	w.Uint64(uint64(cfg.MinStakeToPropose))
	w.RawByte('}')
	return writerResult(w)
}

// GetMinStake returns just the join threshold.
// Example payload: {"dao_id":0}
//
//go:wasmexport membership_get_min_stake
func GetMinStake(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)
	cfg := mustLoadMembershipConfig(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"min_stake_to_join":`)
	w.Uint64(uint64(cfg.MinStakeToJoin))
	w.RawByte('}')
	return writerResult(w)
}

// GetMinProposalStake returns just the proposal threshold.
// Example payload: {"dao_id":0}
//
//go:wasmexport membership_get_min_proposal_stake
func GetMinProposalStake(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)
	cfg := mustLoadMembershipConfig(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"min_stake_to_propose":`)
	w.Uint64(uint64(cfg.MinStakeToPropose))
	w.RawByte('}')
	return writerResult(w)
}

// CanCreateProposal evaluates the proposal predicate for an account.
// Example payload: {"dao_id":0,"account":"hive:alice"}
//
//go:wasmexport membership_can_propose
func CanCreateProposal(payload *string) *string {
	requireInitialized()
	args := decodeAccountArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"allowed":`)
	w.Bool(canProposeIn(dao, args.Account))
	w.RawByte('}')
	return writerResult(w)
}

// GetMemberAddresses returns the DAO's member list from the enumeration
// index.
// Example payload: {"dao_id":0}
//
//go:wasmexport membership_get_addresses
func GetMemberAddresses(payload *string) *string {
	requireInitialized()
	args := decodeDaoArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"addresses":[`)
	for i, addr := range memberAddresses(args.DaoID) {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(AddressToString(addr))
	}
	w.RawString(`]}`)
	return writerResult(w)
}

// ValidateStakerSync reports whether the registry mirror matches the ledger
// for one account.
// Example payload: {"dao_id":0,"account":"hive:alice"}
//
//go:wasmexport sync_validate
func ValidateStakerSync(payload *string) *string {
	requireInitialized()
	args := decodeAccountArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"in_sync":`)
	w.Bool(stakerInSync(args.DaoID, args.Account))
	w.RawByte('}')
	return writerResult(w)
}

// GetVote returns one vote, null when the id was never created.
// Example payload: {"dao_id":0,"vote_id":0}
//
//go:wasmexport votes_get_one
func GetVote(payload *string) *string {
	requireInitialized()
	args := decodeVoteTargetArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)

	vote := loadVote(args.DaoID, args.VoteID)
	if vote == nil {
		return strptr("null")
	}
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64(vote.ID)
	w.RawString(`,"title":`)
	w.String(vote.Title)
	w.RawString(`,"description":`)
	w.String(vote.Description)
	w.RawString(`,"start_time":`)
	w.Int64(vote.StartTime)
	w.RawString(`,"end_time":`)
	w.Int64(vote.EndTime)
	w.RawString(`,"yes_total":`)
	w.Uint64(uint64(vote.YesTotal))
	w.RawString(`,"no_total":`)
	w.Uint64(uint64(vote.NoTotal))
	w.RawString(`,"voter_count":`)
	w.Uint64(vote.VoterCount)
	w.RawString(`,"completed":`)
	w.Bool(vote.Completed)
	w.RawByte('}')
	return writerResult(w)
}

// GetBallot returns one voter's receipt, null when the account has not
// voted.
// Example payload: {"dao_id":0,"vote_id":0,"account":"hive:alice"}
//
//go:wasmexport votes_get_ballot
func GetBallot(payload *string) *string {
	requireInitialized()
	args := decodeBallotArgs(requirePayload(payload))
	mustLoadDao(args.DaoID)
	mustLoadVote(args.DaoID, args.VoteID)

	b := loadBallot(args.DaoID, args.VoteID, args.Account)
	if b == nil {
		return strptr("null")
	}
	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"amount":`)
	w.Uint64(uint64(b.Amount))
	w.RawString(`,"timestamp":`)
	w.Int64(b.Timestamp)
	w.RawString(`,"yes":`)
	w.Bool(b.Yes)
	w.RawByte('}')
	return writerResult(w)
}
