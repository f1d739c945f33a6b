//go:build test

package host

import "vaultdao/sdk"

// TestHost satisfies sdk.Host for native test runs. It carries a kv store
// for contract state, a simple balance ledger per account and asset, and the
// env snapshot the contract reads through sdk.GetEnv.
type TestHost struct {
	store Store

	contractID   string
	contractAddr sdk.Address

	balances map[string]int64

	env sdk.Env

	Logs  []string
	Calls []ContractCallRecord

	foreignState map[string]map[string]string
}

// ContractCallRecord captures an outgoing contracts.call for assertions.
type ContractCallRecord struct {
	ContractID string
	Method     string
	Payload    string
	Options    string
}

func NewTestHost(store Store) *TestHost {
	return &TestHost{
		store:        store,
		contractID:   "vaultdao",
		contractAddr: sdk.Address("contract:vaultdao"),
		balances:     map[string]int64{},
		foreignState: map[string]map[string]string{},
	}
}

func balanceKey(addr sdk.Address, asset sdk.Asset) string {
	return addr.String() + "|" + asset.String()
}

// SetBalance seeds an account balance.
func (h *TestHost) SetBalance(addr sdk.Address, asset sdk.Asset, amount int64) {
	h.balances[balanceKey(addr, asset)] = amount
}

// ContractAddress returns the contract's own escrow account.
func (h *TestHost) ContractAddress() sdk.Address {
	return h.contractAddr
}

// SetEnv installs the env snapshot the next call observes.
func (h *TestHost) SetEnv(env sdk.Env) {
	h.env = env
}

// SetForeignState seeds readable state of another contract.
func (h *TestHost) SetForeignState(contractID, key, value string) {
	if h.foreignState[contractID] == nil {
		h.foreignState[contractID] = map[string]string{}
	}
	h.foreignState[contractID][key] = value
}

// -----------------------------------------------------------------------------
// sdk.Host
// -----------------------------------------------------------------------------

func (h *TestHost) Log(msg string) {
	h.Logs = append(h.Logs, msg)
}

func (h *TestHost) StateSet(key, value string) {
	h.store.Set(key, value)
}

func (h *TestHost) StateGet(key string) *string {
	v, ok := h.store.Get(key)
	if !ok {
		return nil
	}
	return &v
}

func (h *TestHost) StateDelete(key string) {
	h.store.Delete(key)
}

func (h *TestHost) Env() sdk.Env {
	return h.env
}

func (h *TestHost) EnvKey(key string) *string {
	var v string
	switch key {
	case "tx.id":
		v = h.env.TxId
	case "block.timestamp":
		v = h.env.Timestamp
	case "block.id":
		v = h.env.BlockId
	case "contract.id":
		v = h.env.ContractId
	case "msg.sender":
		v = h.env.Sender.Address.String()
	case "msg.payer":
		v = h.env.Payer
	default:
		return nil
	}
	return &v
}

func (h *TestHost) Balance(addr sdk.Address, asset sdk.Asset) int64 {
	return h.balances[balanceKey(addr, asset)]
}

// Draw pulls funds from the sender into the contract account, the way the
// production host honors a transfer.allow intent.
func (h *TestHost) Draw(amount int64, asset sdk.Asset) {
	if amount <= 0 {
		panic(sdk.AbortError{Msg: "draw amount must be positive"})
	}
	from := h.env.Sender.Address
	if h.balances[balanceKey(from, asset)] < amount {
		panic(sdk.AbortError{Msg: "insufficient balance for draw"})
	}
	h.balances[balanceKey(from, asset)] -= amount
	h.balances[balanceKey(h.contractAddr, asset)] += amount
}

func (h *TestHost) Transfer(to sdk.Address, amount int64, asset sdk.Asset) {
	if amount <= 0 {
		panic(sdk.AbortError{Msg: "transfer amount must be positive"})
	}
	if h.balances[balanceKey(h.contractAddr, asset)] < amount {
		panic(sdk.AbortError{Msg: "insufficient contract balance for transfer"})
	}
	h.balances[balanceKey(h.contractAddr, asset)] -= amount
	h.balances[balanceKey(to, asset)] += amount
}

func (h *TestHost) Withdraw(to sdk.Address, amount int64, asset sdk.Asset) {
	h.Transfer(to, amount, asset)
}

func (h *TestHost) ContractRead(contractID, key string) *string {
	if m, ok := h.foreignState[contractID]; ok {
		if v, ok := m[key]; ok {
			return &v
		}
	}
	return nil
}

// ContractCall records the outgoing call and returns an empty ok result.
func (h *TestHost) ContractCall(contractID, method, payload, options string) *string {
	h.Calls = append(h.Calls, ContractCallRecord{
		ContractID: contractID,
		Method:     method,
		Payload:    payload,
		Options:    options,
	})
	res := "ok"
	return &res
}
