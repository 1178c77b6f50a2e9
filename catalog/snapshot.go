package catalog

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/internal/hash"
	"github.com/hupe1980/unitgo/measure"
)

// Snapshot layout:
//
//	magic "UNGO" | version u8 | compression u8 | codec name length u8 |
//	codec name | payload length u32 | crc32c u32 | payload
//
// Lengths are little endian. The checksum covers the uncompressed payload.
const (
	snapshotMagic   = "UNGO"
	snapshotVersion = 1
	fixedHeaderSize = len(snapshotMagic) + 3
)

// MaxSnapshotSize bounds the uncompressed payload of a snapshot. Decoding
// checks the header against it before allocating.
const MaxSnapshotSize = 64 << 20

// Record is the persisted form of a named unit.
type Record struct {
	Name      string           `json:"name"`
	Symbol    string           `json:"symbol"`
	BaseRatio float64          `json:"base_ratio"`
	Dimension dimension.Vector `json:"dimension"`
}

// NewRecord captures u under name.
func NewRecord(name string, u measure.Unit) Record {
	one := u.One()
	return Record{
		Name:      name,
		Symbol:    one.Symbol(),
		BaseRatio: one.BaseRatio(),
		Dimension: one.Dimension(),
	}
}

// Unit rebuilds the unit described by r.
func (r Record) Unit() measure.Unit {
	return measure.NewUnit(r.Symbol, r.BaseRatio, r.Dimension)
}

type snapshotPayload struct {
	Records []Record `json:"records"`
}

// EncodeSnapshot serialises records with c and compresses the payload.
// A nil codec selects codec.Default.
func EncodeSnapshot(records []Record, c codec.Codec, compression Compression) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("codec name %q too long", name)
	}

	raw, err := c.Marshal(snapshotPayload{Records: records})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if len(raw) > MaxSnapshotSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(raw))
	}

	payload, used, err := compress(raw, compression)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}

	buf := make([]byte, 0, fixedHeaderSize+len(name)+8+len(payload))
	buf = append(buf, snapshotMagic...)
	buf = append(buf, snapshotVersion, byte(used), byte(len(name)))
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(raw)))
	buf = binary.LittleEndian.AppendUint32(buf, hash.CRC32C(raw))
	buf = append(buf, payload...)
	return buf, nil
}

// DecodeSnapshot verifies and decodes a snapshot produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) ([]Record, error) {
	if len(data) < fixedHeaderSize || string(data[:len(snapshotMagic)]) != snapshotMagic {
		return nil, ErrBadMagic
	}

	off := len(snapshotMagic)
	version, compression, nameLen := data[off], Compression(data[off+1]), int(data[off+2])
	off += 3

	if version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if len(data) < off+nameLen+8 {
		return nil, ErrTruncated
	}

	name := string(data[off : off+nameLen])
	off += nameLen

	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	claimed := binary.LittleEndian.Uint32(data[off:])
	sum := binary.LittleEndian.Uint32(data[off+4:])
	off += 8

	if claimed > MaxSnapshotSize {
		return nil, fmt.Errorf("%w: header claims %d bytes", ErrTooLarge, claimed)
	}
	rawLen := int(claimed)
	if compression == CompressionNone && len(data)-off != rawLen {
		return nil, ErrTruncated
	}

	raw, err := decompress(data[off:], compression, rawLen)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}
	if hash.CRC32C(raw) != sum {
		return nil, ErrChecksum
	}

	var p snapshotPayload
	if err := c.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return p.Records, nil
}
