package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"

	"vaultdao/sdk"
)

// Stored records use a deterministic binary layout instead of JSON so state
// bytes stay small and stable across wasm builds.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amounts on a single call site in case the width ever changes.
func (w *binWriter) writeAmount(v Amount) {
	w.writeUint64(uint64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easy.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount rebuilds an Amount through the uint64 path.
func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return Amount(v), nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if l > uint64(len(r.data)-r.pos) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// readAddress restores the wrapped address type.
func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.Address(""), err
	}
	return AddressFromString(s), nil
}

// ------------------------------------------------------------------
// Record encoders/decoders
// ------------------------------------------------------------------

// EncodeDaoRecord serializes the DAO scope record into deterministic bytes.
// Example payload: EncodeDaoRecord(&DaoRecord{ID: 7, Name: "tiny dao"})
func EncodeDaoRecord(d *DaoRecord) []byte {
	w := newWriter()
	w.writeUint64(d.ID)
	w.writeString(d.Name)
	w.writeAddress(d.Admin)
	w.writeInt64(d.CreatedAt)
	return w.bytes()
}

func DecodeDaoRecord(data []byte) (*DaoRecord, error) {
	r := newReader(data)
	d := &DaoRecord{}
	var err error
	if d.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if d.Admin, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return d, nil
}

// EncodeMembershipConfig packs the two thresholds.
func EncodeMembershipConfig(cfg *MembershipConfig) []byte {
	w := newWriter()
	w.writeAmount(cfg.MinStakeToJoin)
	w.writeAmount(cfg.MinStakeToPropose)
	return w.bytes()
}

func DecodeMembershipConfig(data []byte) (*MembershipConfig, error) {
	r := newReader(data)
	cfg := &MembershipConfig{}
	var err error
	if cfg.MinStakeToJoin, err = r.readAmount(); err != nil {
		return nil, err
	}
	if cfg.MinStakeToPropose, err = r.readAmount(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EncodeVault stores the escrow balance for one DAO.
func EncodeVault(v *Vault) []byte {
	w := newWriter()
	w.writeAmount(v.Balance)
	return w.bytes()
}

func DecodeVault(data []byte) (*Vault, error) {
	r := newReader(data)
	v := &Vault{}
	var err error
	if v.Balance, err = r.readAmount(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeStakerProfile packs the per-account aggregate.
func EncodeStakerProfile(p *StakerProfile) []byte {
	w := newWriter()
	w.writeAmount(p.TotalStaked)
	return w.bytes()
}

func DecodeStakerProfile(data []byte) (*StakerProfile, error) {
	r := newReader(data)
	p := &StakerProfile{}
	var err error
	if p.TotalStaked, err = r.readAmount(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeStakeEntry packs a per-DAO position with its lock timestamp.
func EncodeStakeEntry(e *StakeEntry) []byte {
	w := newWriter()
	w.writeAmount(e.Balance)
	w.writeInt64(e.LastStakeTime)
	return w.bytes()
}

func DecodeStakeEntry(data []byte) (*StakeEntry, error) {
	r := newReader(data)
	e := &StakeEntry{}
	var err error
	if e.Balance, err = r.readAmount(); err != nil {
		return nil, err
	}
	if e.LastStakeTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	return e, nil
}

// EncodeMemberRow serializes the membership hint row.
// Example payload: EncodeMemberRow(&MemberRow{Address: AddressFromString("hive:alice")})
func EncodeMemberRow(m *MemberRow) []byte {
	w := newWriter()
	w.writeAddress(m.Address)
	w.writeInt64(m.JoinedAt)
	return w.bytes()
}

func DecodeMemberRow(data []byte) (*MemberRow, error) {
	r := newReader(data)
	m := &MemberRow{}
	var err error
	if m.Address, err = r.readAddress(); err != nil {
		return nil, err
	}
	if m.JoinedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeVote turns a Vote into bytes so tallies persist without json overhead.
func EncodeVote(v *Vote) []byte {
	w := newWriter()
	w.writeUint64(v.ID)
	w.writeString(v.Title)
	w.writeString(v.Description)
	w.writeInt64(v.StartTime)
	w.writeInt64(v.EndTime)
	w.writeAmount(v.YesTotal)
	w.writeAmount(v.NoTotal)
	w.writeUint64(v.VoterCount)
	w.writeBool(v.Completed)
	return w.bytes()
}

func DecodeVote(data []byte) (*Vote, error) {
	r := newReader(data)
	v := &Vote{}
	var err error
	if v.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if v.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if v.StartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if v.EndTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if v.YesTotal, err = r.readAmount(); err != nil {
		return nil, err
	}
	if v.NoTotal, err = r.readAmount(); err != nil {
		return nil, err
	}
	if v.VoterCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.Completed, err = r.readBool(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeBallot persists the snapshotted voting weight for a voter.
func EncodeBallot(b *Ballot) []byte {
	w := newWriter()
	w.writeAmount(b.Amount)
	w.writeInt64(b.Timestamp)
	w.writeBool(b.Yes)
	return w.bytes()
}

func DecodeBallot(data []byte) (*Ballot, error) {
	r := newReader(data)
	b := &Ballot{}
	var err error
	if b.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if b.Timestamp, err = r.readInt64(); err != nil {
		return nil, err
	}
	if b.Yes, err = r.readBool(); err != nil {
		return nil, err
	}
	return b, nil
}

// EncodeAddressList packs an enumeration index (member lists).
func EncodeAddressList(addrs []sdk.Address) []byte {
	w := newWriter()
	w.writeVarUint(uint64(len(addrs)))
	for _, a := range addrs {
		w.writeAddress(a)
	}
	return w.bytes()
}

func DecodeAddressList(data []byte) ([]sdk.Address, error) {
	r := newReader(data)
	count, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if count > math.MaxInt32 {
		return nil, errors.New("address list too large")
	}
	out := make([]sdk.Address, 0, count)
	for i := uint64(0); i < count; i++ {
		a, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
