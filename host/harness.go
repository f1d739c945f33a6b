//go:build test

package host

import (
	"fmt"

	"vaultdao/sdk"
)

// ContractTest drives contract exports natively. It owns the host, installs
// it into the sdk bindings and hands every call a fresh tx id so the
// contract's per-tx env cache rolls over.
type ContractTest struct {
	Host *TestHost

	txSeq int
}

// CallOpts shape one call's environment.
type CallOpts struct {
	Caller    string
	Timestamp string
	Intents   []sdk.Intent
}

// TxResult mirrors what the chain runtime reports per transaction.
type TxResult struct {
	Success   bool
	Ret       string
	Err       string
	ErrSymbol string
	Logs      []string
}

// NewContractTest wires a host around the given store and registers it.
func NewContractTest(store Store) *ContractTest {
	ct := &ContractTest{Host: NewTestHost(store)}
	sdk.SetHost(ct.Host)
	return ct
}

// Deposit seeds an account's balance.
func (ct *ContractTest) Deposit(account string, amount int64, asset sdk.Asset) {
	ct.Host.SetBalance(sdk.Address(account), asset, amount)
}

// Balance reads an account's balance.
func (ct *ContractTest) Balance(account string, asset sdk.Asset) int64 {
	return ct.Host.Balance(sdk.Address(account), asset)
}

// ContractBalance reads the contract escrow account.
func (ct *ContractTest) ContractBalance(asset sdk.Asset) int64 {
	return ct.Host.Balance(ct.Host.ContractAddress(), asset)
}

// StateGet peeks raw contract state, mostly to inject drift in sync tests.
func (ct *ContractTest) StateGet(key string) *string {
	return ct.Host.StateGet(key)
}

// StateSet pokes raw contract state behind the contract's back.
func (ct *ContractTest) StateSet(key, value string) {
	ct.Host.StateSet(key, value)
}

// Call invokes one export with a json payload, recovering aborts and
// reverts into the result the way the runtime traps them.
func (ct *ContractTest) Call(fn func(*string) *string, payload string, opts CallOpts) (res TxResult) {
	ct.txSeq++
	caller := sdk.Address(opts.Caller)
	ct.Host.SetEnv(sdk.Env{
		ContractId:  ct.Host.contractID,
		TxId:        fmt.Sprintf("tx-%d", ct.txSeq),
		BlockId:     "block1",
		BlockHeight: uint64(ct.txSeq),
		Timestamp:   opts.Timestamp,
		Sender: sdk.Sender{
			Address:       caller,
			RequiredAuths: []sdk.Address{caller},
		},
		Caller:  sdk.Caller{Address: caller},
		Payer:   opts.Caller,
		Intents: opts.Intents,
	})

	logStart := len(ct.Host.Logs)
	defer func() {
		res.Logs = append(res.Logs, ct.Host.Logs[logStart:]...)
		if r := recover(); r != nil {
			switch e := r.(type) {
			case sdk.RevertError:
				res.Err = e.Msg
				res.ErrSymbol = e.Symbol
			case sdk.AbortError:
				res.Err = e.Msg
			default:
				panic(r)
			}
		}
	}()

	var p *string
	if payload != "" {
		p = &payload
	}
	ret := fn(p)
	res.Success = true
	if ret != nil {
		res.Ret = *ret
	}
	return res
}
