package sdk

// Host is the surface the contract needs from its execution environment. The
// wasm build satisfies it through host imports; the test build routes every
// binding through a Host implementation registered via SetHost.
type Host interface {
	Log(msg string)

	StateSet(key, value string)
	StateGet(key string) *string
	StateDelete(key string)

	Env() Env
	EnvKey(key string) *string

	Balance(addr Address, asset Asset) int64
	Draw(amount int64, asset Asset)
	Transfer(to Address, amount int64, asset Asset)
	Withdraw(to Address, amount int64, asset Asset)

	ContractRead(contractId, key string) *string
	ContractCall(contractId, method, payload, options string) *string
}
