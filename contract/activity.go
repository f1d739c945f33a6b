package contract

import (
	"github.com/CosmWasm/tinyjson/jwriter"

	"vaultdao/sdk"
)

// recordActivity notifies the configured collaborator contract about a
// ledger action so it can award engagement points. Best effort: a missing
// hook skips the call and a failing collaborator never breaks the ledger
// transaction that triggered it.
func recordActivity(kind string, daoID uint64, addr sdk.Address, amount Amount) {
	hook := activityHook()
	if hook == "" {
		return
	}
	defer func() {
		recover()
	}()

	w := &jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"kind":`)
	w.String(kind)
	w.RawString(`,"dao_id":`)
	w.Uint64(daoID)
	w.RawString(`,"account":`)
	w.String(AddressToString(addr))
	w.RawString(`,"amount":`)
	w.Uint64(uint64(amount))
	w.RawByte('}')
	data, err := w.BuildBytes()
	if err != nil {
		return
	}
	sdk.ContractCall(hook, "record_activity", string(data), nil)
}
