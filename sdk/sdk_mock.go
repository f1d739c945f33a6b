//go:build test

package sdk

import "encoding/json"

// Test builds swap the wasm host imports for a registered Host so the
// contract runs natively inside `go test -tags test`. Abort and Revert are
// modeled as typed panics the harness recovers into a TxResult.

var activeHost Host

// SetHost installs the host implementation every binding routes through.
// Example payload: sdk.SetHost(host.NewTestHost(store))
func SetHost(h Host) {
	activeHost = h
}

func mustHost() Host {
	if activeHost == nil {
		panic("sdk: no host registered, call sdk.SetHost first")
	}
	return activeHost
}

func Log(s string) {
	mustHost().Log(s)
}

func Abort(msg string) {
	panic(AbortError{Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(RevertError{Msg: msg, Symbol: symbol})
}

func StateSetObject(key string, value string) {
	mustHost().StateSet(key, value)
}

func StateGetObject(key string) *string {
	return mustHost().StateGet(key)
}

func StateDeleteObject(key string) {
	mustHost().StateDelete(key)
}

func GetEnv() Env {
	return mustHost().Env()
}

func GetEnvKey(key string) *string {
	return mustHost().EnvKey(key)
}

func GetBalance(address Address, asset Asset) int64 {
	return mustHost().Balance(address, asset)
}

func HiveDraw(amount int64, asset Asset) {
	mustHost().Draw(amount, asset)
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	mustHost().Transfer(to, amount, asset)
}

func HiveWithdraw(to Address, amount int64, asset Asset) {
	mustHost().Withdraw(to, amount, asset)
}

func ContractStateGet(contractId string, key string) *string {
	return mustHost().ContractRead(contractId, key)
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(&options)
		if err != nil {
			Revert("could not serialize options", "sdk_error")
		}
		optStr = string(optByte)
	}
	return mustHost().ContractCall(contractId, method, payload, optStr)
}
