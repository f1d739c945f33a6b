package contract

import (
	"fmt"

	"vaultdao/sdk"
)

// Events go out as short pipe-delimited log lines so indexers can follow
// state changes without replaying the contract.

func emitContractInit(owner sdk.Address) {
	sdk.Log(fmt.Sprintf("ci|own:%s", owner.String()))
}

func emitDaoCreated(id uint64, name string, admin sdk.Address) {
	sdk.Log(fmt.Sprintf("dc|id:%d|n:%s|by:%s", id, name, admin.String()))
}

func emitStaked(daoID uint64, by sdk.Address, amount, total Amount, ts int64) {
	sdk.Log(fmt.Sprintf("st|id:%d|by:%s|am:%d|tot:%d|ts:%d", daoID, by.String(), amount, total, ts))
}

func emitUnstaked(daoID uint64, by sdk.Address, amount, remaining Amount, ts int64) {
	sdk.Log(fmt.Sprintf("us|id:%d|by:%s|am:%d|rem:%d|ts:%d", daoID, by.String(), amount, remaining, ts))
}

func emitMemberJoined(daoID uint64, addr sdk.Address) {
	sdk.Log(fmt.Sprintf("mj|id:%d|by:%s", daoID, addr.String()))
}

func emitMemberLeft(daoID uint64, addr sdk.Address) {
	sdk.Log(fmt.Sprintf("ml|id:%d|by:%s", daoID, addr.String()))
}

func emitMemberRemoved(daoID uint64, addr sdk.Address, by sdk.Address) {
	sdk.Log(fmt.Sprintf("mr|id:%d|m:%s|by:%s", daoID, addr.String(), by.String()))
}

func emitMinStakeUpdated(daoID uint64, prev, next Amount) {
	sdk.Log(fmt.Sprintf("ms|id:%d|old:%d|new:%d", daoID, prev, next))
}

func emitMinProposalStakeUpdated(daoID uint64, prev, next Amount) {
	sdk.Log(fmt.Sprintf("mp|id:%d|old:%d|new:%d", daoID, prev, next))
}

func emitVoteCreated(daoID, voteID uint64, title string, by sdk.Address) {
	sdk.Log(fmt.Sprintf("vc|id:%d|v:%d|t:%s|by:%s", daoID, voteID, title, by.String()))
}

func emitBallotCast(daoID, voteID uint64, by sdk.Address, yes bool, weight Amount, ts int64) {
	side := 0
	if yes {
		side = 1
	}
	sdk.Log(fmt.Sprintf("vb|id:%d|v:%d|by:%s|yes:%d|w:%d|ts:%d", daoID, voteID, by.String(), side, weight, ts))
}

func emitWinnerDeclared(daoID, voteID uint64, yesTotal, noTotal Amount) {
	sdk.Log(fmt.Sprintf("vw|id:%d|v:%d|y:%d|n:%d", daoID, voteID, yesTotal, noTotal))
}

func emitSyncRepaired(daoID uint64, addr sdk.Address, ledger Amount) {
	sdk.Log(fmt.Sprintf("rs|id:%d|m:%s|am:%d", daoID, addr.String(), ledger))
}
