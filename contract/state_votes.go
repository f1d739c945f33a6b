package contract

import "vaultdao/sdk"

// -----------------------------------------------------------------------------
// Vote + ballot persistence
// -----------------------------------------------------------------------------

func saveVote(daoID uint64, v *Vote) {
	sdk.StateSetObject(voteKey(daoID, v.ID), string(EncodeVote(v)))
}

func loadVote(daoID, voteID uint64) *Vote {
	ptr := sdk.StateGetObject(voteKey(daoID, voteID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	v, err := DecodeVote([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode vote")
	}
	return v
}

func mustLoadVote(daoID, voteID uint64) *Vote {
	v := loadVote(daoID, voteID)
	if v == nil {
		revertWith("vote not found", symNotFound)
	}
	return v
}

func saveBallot(daoID, voteID uint64, addr sdk.Address, b *Ballot) {
	sdk.StateSetObject(ballotKey(daoID, voteID, addr), string(EncodeBallot(b)))
}

// loadBallot doubles as the double-vote guard: a present receipt means the
// account already voted.
func loadBallot(daoID, voteID uint64, addr sdk.Address) *Ballot {
	ptr := sdk.StateGetObject(ballotKey(daoID, voteID, addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	b, err := DecodeBallot([]byte(*ptr))
	if err != nil {
		abortMsg("failed to decode ballot")
	}
	return b
}

// nextVoteID hands out sequential ids per DAO, equal to the number of votes
// created so far.
func nextVoteID(daoID uint64) uint64 {
	return getCount(voteCountKey(daoID))
}

func bumpVoteCount(daoID uint64) {
	setCount(voteCountKey(daoID), getCount(voteCountKey(daoID))+1)
}
