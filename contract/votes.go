package contract

// -----------------------------------------------------------------------------
// Voting
// -----------------------------------------------------------------------------

// CreateVote opens a yes/no vote inside a DAO. Admin only; the window must
// be forward, end strictly after start. Returns the new vote id.
// Example payload: {"dao_id":0,"title":"fund grants","description":"q3 budget","start_time":1700000000,"end_time":1700086400}
//
//go:wasmexport votes_create
func CreateVote(payload *string) *string {
	requireInitialized()
	args := decodeCreateVoteArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	sender := getSenderAddress()
	requireAdmin(dao, sender)

	if args.Title == "" {
		abortMsg("vote title must not be empty")
	}
	if args.EndTime <= args.StartTime {
		revertWith("vote window end must be after start", symInvalidVoteTime)
	}

	id := nextVoteID(dao.ID)
	vote := &Vote{
		ID:          id,
		Title:       args.Title,
		Description: args.Description,
		StartTime:   args.StartTime,
		EndTime:     args.EndTime,
	}
	saveVote(dao.ID, vote)
	bumpVoteCount(dao.ID)

	emitVoteCreated(dao.ID, id, args.Title, sender)
	return strptr(UInt64ToString(id))
}

// CastVote records the sender's ballot. Weight comes from the staker
// registry counter read at cast time and is frozen into the ballot, so
// later stake changes never reshape a tally. One ballot per account.
// Example payload: {"dao_id":0,"vote_id":0,"yes":true}
//
//go:wasmexport votes_cast
func CastVote(payload *string) *string {
	requireInitialized()
	args := decodeCastVoteArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	vote := mustLoadVote(dao.ID, args.VoteID)
	sender := getSenderAddress()

	now := nowUnix()
	if now < vote.StartTime || now > vote.EndTime {
		revertWith("vote window is not open", symInvalidVoteTime)
	}
	if loadBallot(dao.ID, vote.ID, sender) != nil {
		revertWith("account already voted", symAlreadyVoted)
	}

	weight, present := registryAmount(dao.ID, sender)
	if !present || weight == 0 {
		revertWith("no staked weight in this dao", symInsufficientStake)
	}

	if args.Yes {
		vote.YesTotal = checkedAdd(vote.YesTotal, weight)
	} else {
		vote.NoTotal = checkedAdd(vote.NoTotal, weight)
	}
	vote.VoterCount++
	saveVote(dao.ID, vote)
	saveBallot(dao.ID, vote.ID, sender, &Ballot{
		Amount:    weight,
		Timestamp: now,
		Yes:       args.Yes,
	})

	emitBallotCast(dao.ID, vote.ID, sender, args.Yes, weight, now)
	recordActivity("vote", dao.ID, sender, weight)
	return strptr("ok")
}

// DeclareWinner closes a vote once its window has passed and marks it
// completed. The tallies themselves are the verdict; ties close too.
// Example payload: {"dao_id":0,"vote_id":0}
//
//go:wasmexport votes_declare_winner
func DeclareWinner(payload *string) *string {
	requireInitialized()
	args := decodeVoteTargetArgs(requirePayload(payload))
	dao := mustLoadDao(args.DaoID)
	sender := getSenderAddress()
	requireAdmin(dao, sender)

	vote := mustLoadVote(dao.ID, args.VoteID)
	if vote.Completed {
		abortMsg("vote already completed")
	}
	if nowUnix() < vote.EndTime {
		revertWith("vote window has not ended", symInvalidVoteTime)
	}

	vote.Completed = true
	saveVote(dao.ID, vote)
	emitWinnerDeclared(dao.ID, vote.ID, vote.YesTotal, vote.NoTotal)
	return strptr("ok")
}
