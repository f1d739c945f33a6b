package sdk

// Env is the execution environment snapshot the host exposes for the current
// transaction. Timestamp is either unix seconds or an ISO string depending on
// the host version, so callers should parse defensively.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"-"`
	Caller      Caller   `json:"-"`
	Payer       string   `json:"msg.payer"`
	Intents     []Intent `json:"intents"`
}
