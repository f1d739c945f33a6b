package sdk

// AbortError and RevertError are the panic payloads raised by the mock host
// bindings so a native test harness can catch failed calls the same way the
// chain runtime traps them. The wasm bindings never unwind; the host halts
// the instance before the panic is observable.

type AbortError struct {
	Msg string
}

func (e AbortError) Error() string {
	return "abort: " + e.Msg
}

type RevertError struct {
	Msg    string
	Symbol string
}

func (e RevertError) Error() string {
	return "revert(" + e.Symbol + "): " + e.Msg
}
