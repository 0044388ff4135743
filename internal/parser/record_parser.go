package parser

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/mahdiidarabi/ecdsa-secp/pkg/secp"
)

// Record is one verification request read from a batch file.
type Record struct {
	Index     int // 0-based position in the source
	Curve     secp.Curve
	Digest    []byte
	PublicX   *big.Int
	PublicY   *big.Int
	Signature string
}

// RecordParser reads verification records from a file.
type RecordParser interface {
	ParseRecords(path string) ([]*Record, error)
	Parse(r io.Reader) ([]*Record, error)
}

// Fields names the JSON keys or CSV columns holding each part of a record.
// Empty names fall back to DefaultFields.
type Fields struct {
	Curve     string
	Digest    string
	Message   string
	PublicX   string
	PublicY   string
	Signature string
}

// DefaultFields returns the field names used by the ecsig tools.
func DefaultFields() Fields {
	return Fields{
		Curve:     "curve",
		Digest:    "digest",
		Message:   "message",
		PublicX:   "public_x",
		PublicY:   "public_y",
		Signature: "signature",
	}
}

func (f Fields) withDefaults() Fields {
	d := DefaultFields()
	if f.Curve == "" {
		f.Curve = d.Curve
	}
	if f.Digest == "" {
		f.Digest = d.Digest
	}
	if f.Message == "" {
		f.Message = d.Message
	}
	if f.PublicX == "" {
		f.PublicX = d.PublicX
	}
	if f.PublicY == "" {
		f.PublicY = d.PublicY
	}
	if f.Signature == "" {
		f.Signature = d.Signature
	}
	return f
}

// ForFormat returns the parser for "json" or "csv".
func ForFormat(format string, defaultCurve secp.Curve) (RecordParser, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return &JSONParser{DefaultCurve: defaultCurve}, nil
	case "csv":
		return &CSVParser{DefaultCurve: defaultCurve}, nil
	default:
		return nil, errors.Errorf("unsupported record format %q (want json or csv)", format)
	}
}

// JSONParser reads an array of objects:
//
//	[
//	  {"curve": "SECP256K1", "digest": "0x...", "public_x": "...", "public_y": "...", "signature": "..."},
//	  {"message": "trident", "public_x": "...", "public_y": "...", "signature": "..."}
//	]
//
// Coordinates are hex strings (optional 0x prefix) or decimal JSON numbers.
// When digest is absent the message is hashed with SHA-256. A missing curve
// falls back to DefaultCurve.
type JSONParser struct {
	Fields       Fields
	DefaultCurve secp.Curve
}

// ParseRecords parses records from a JSON file.
func (p *JSONParser) ParseRecords(path string) ([]*Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	defer file.Close()
	return p.Parse(file)
}

// Parse parses records from r.
func (p *JSONParser) Parse(r io.Reader) ([]*Record, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON")
	}

	f := p.Fields.withDefaults()
	records := make([]*Record, 0, len(items))
	for i, item := range items {
		get := func(name string) (interface{}, bool) {
			v, ok := item[name]
			return v, ok && v != nil
		}
		rec, err := buildRecord(i, f, p.DefaultCurve, get)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// CSVParser reads a header row followed by one record per line. Column names
// and value formats match JSONParser.
type CSVParser struct {
	Fields       Fields
	DefaultCurve secp.Curve
}

// ParseRecords parses records from a CSV file.
func (p *CSVParser) ParseRecords(path string) ([]*Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()
	return p.Parse(file)
}

// Parse parses records from r.
func (p *CSVParser) Parse(r io.Reader) ([]*Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}
	columns := make(map[string]int, len(header))
	for i, col := range header {
		columns[strings.TrimSpace(col)] = i
	}

	f := p.Fields.withDefaults()
	for _, required := range []string{f.PublicX, f.PublicY, f.Signature} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Errorf("missing required column %q", required)
		}
	}

	var records []*Record
	for i := 0; ; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read record")
		}

		get := func(name string) (interface{}, bool) {
			idx, ok := columns[name]
			if !ok || idx >= len(row) || row[idx] == "" {
				return nil, false
			}
			return row[idx], true
		}
		rec, err := buildRecord(i, f, p.DefaultCurve, get)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func buildRecord(index int, f Fields, defaultCurve secp.Curve, get func(string) (interface{}, bool)) (*Record, error) {
	rec := &Record{Index: index, Curve: defaultCurve}

	if v, ok := get(f.Curve); ok {
		name, ok := v.(string)
		if !ok {
			return nil, errors.Errorf("record %d: %s must be a string", index, f.Curve)
		}
		c, err := secp.Lookup(name)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", index)
		}
		rec.Curve = c.Name()
	}
	if rec.Curve == "" {
		return nil, errors.Errorf("record %d: no curve given and no default set", index)
	}

	if v, ok := get(f.Digest); ok {
		s, ok := v.(string)
		if !ok {
			return nil, errors.Errorf("record %d: %s must be a hex string", index, f.Digest)
		}
		digest, err := ParseHexBytes(s)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d: %s", index, f.Digest)
		}
		rec.Digest = digest
	} else if v, ok := get(f.Message); ok {
		msg, ok := v.(string)
		if !ok {
			return nil, errors.Errorf("record %d: %s must be a string", index, f.Message)
		}
		rec.Digest = HashMessage([]byte(msg))
	} else {
		return nil, errors.Errorf("record %d: missing %s or %s", index, f.Digest, f.Message)
	}

	var err error
	if rec.PublicX, err = requireBigInt(get, f.PublicX); err != nil {
		return nil, errors.Wrapf(err, "record %d", index)
	}
	if rec.PublicY, err = requireBigInt(get, f.PublicY); err != nil {
		return nil, errors.Wrapf(err, "record %d", index)
	}

	v, ok := get(f.Signature)
	if !ok {
		return nil, errors.Errorf("record %d: missing %s", index, f.Signature)
	}
	sig, ok := v.(string)
	if !ok {
		return nil, errors.Errorf("record %d: %s must be a string", index, f.Signature)
	}
	rec.Signature = strings.TrimSpace(sig)

	return rec, nil
}

func requireBigInt(get func(string) (interface{}, bool), name string) (*big.Int, error) {
	v, ok := get(name)
	if !ok {
		return nil, errors.Errorf("missing %s", name)
	}
	z, err := parseBigInt(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", name)
	}
	return z, nil
}

// HashMessage returns the SHA-256 digest of message.
func HashMessage(message []byte) []byte {
	h := sha256.Sum256(message)
	return h[:]
}

// ParseHexBytes decodes a hex string with an optional 0x prefix. An odd
// number of digits is left padded with a zero.
func ParseHexBytes(s string) ([]byte, error) {
	s = trimHexPrefix(strings.TrimSpace(s))
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex")
	}
	return b, nil
}

// ParseHexInt parses a non-negative hex integer with an optional 0x prefix.
func ParseHexInt(s string) (*big.Int, error) {
	digits := trimHexPrefix(strings.TrimSpace(s))
	if digits == "" || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return nil, errors.Errorf("invalid hex number %q", s)
	}
	z, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, errors.Errorf("invalid hex number %q", s)
	}
	return z, nil
}

// parseBigInt accepts hex strings and decimal JSON numbers.
func parseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		return ParseHexInt(v)

	case json.Number:
		z, ok := new(big.Int).SetString(string(v), 10)
		if !ok || z.Sign() < 0 {
			return nil, errors.Errorf("invalid number format: %s", v)
		}
		return z, nil

	default:
		return nil, errors.Errorf("unsupported type: %T", val)
	}
}

func trimHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}
