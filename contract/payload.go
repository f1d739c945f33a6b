package contract

import "github.com/CosmWasm/tinyjson/jlexer"

// Call payloads arrive as JSON strings. The decoders below walk the object
// with jlexer directly, tolerating unknown fields, and abort the call on
// malformed input.

// requirePayload aborts when an export is invoked without its argument blob.
func requirePayload(payload *string) string {
	if payload == nil || *payload == "" {
		abortMsg("missing payload")
	}
	return *payload
}

func finishLexer(in *jlexer.Lexer) {
	in.Consumed()
	if err := in.Error(); err != nil {
		abortMsg("invalid payload: " + err.Error())
	}
}

func decodeDaoInitArgs(payload string) *DaoInitArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &DaoInitArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "name":
			out.Name = in.String()
		case "min_stake_to_join":
			out.MinStakeToJoin = Amount(in.Uint64())
		case "min_stake_to_propose":
			out.MinStakeToPropose = Amount(in.Uint64())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}

func decodeHookArgs(payload string) string {
	in := jlexer.Lexer{Data: []byte(payload)}
	id := ""
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "contract_id":
			id = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return id
}

func decodeStakeArgs(payload string) *StakeArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &StakeArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "dao_id":
			out.DaoID = in.Uint64()
		case "amount":
			out.Amount = Amount(in.Uint64())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}

func decodeDaoArgs(payload string) *DaoArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &DaoArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "dao_id":
			out.DaoID = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}

func decodeAccountArgs(payload string) *AccountArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &AccountArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "dao_id":
			out.DaoID = in.Uint64()
		case "account":
			out.Account = AddressFromString(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}

func decodeThresholdArgs(payload string) *ThresholdArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &ThresholdArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "dao_id":
			out.DaoID = in.Uint64()
		case "amount":
			out.Amount = Amount(in.Uint64())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}

func decodeCreateVoteArgs(payload string) *CreateVoteArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &CreateVoteArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "dao_id":
			out.DaoID = in.Uint64()
		case "title":
			out.Title = in.String()
		case "description":
			out.Description = in.String()
		case "start_time":
			out.StartTime = in.Int64()
		case "end_time":
			out.EndTime = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}

func decodeCastVoteArgs(payload string) *CastVoteArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &CastVoteArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "dao_id":
			out.DaoID = in.Uint64()
		case "vote_id":
			out.VoteID = in.Uint64()
		case "yes":
			out.Yes = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}

func decodeVoteTargetArgs(payload string) *VoteTargetArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &VoteTargetArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "dao_id":
			out.DaoID = in.Uint64()
		case "vote_id":
			out.VoteID = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}

func decodeBallotArgs(payload string) *BallotArgs {
	in := jlexer.Lexer{Data: []byte(payload)}
	out := &BallotArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "dao_id":
			out.DaoID = in.Uint64()
		case "vote_id":
			out.VoteID = in.Uint64()
		case "account":
			out.Account = AddressFromString(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	finishLexer(&in)
	return out
}
