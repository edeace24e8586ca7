package requirement

import "encoding/hex"

// Value is a leaf value carried by a match expression. It is classified
// purely for display: String when every byte looks like printable ASCII
// text, Bytes otherwise. The classification never affects decoding.
type Value struct {
	str     string
	bytes   []byte
	isBytes bool
}

// NewValue classifies an arbitrary byte block read off the wire. Every byte
// must be ASCII alphanumeric, ASCII whitespace, or ASCII punctuation for the
// block to be treated as a String; a single byte outside that range (in
// particular any byte >= 0x80, even if part of valid UTF-8) makes it Bytes.
func NewValue(data []byte) Value {
	for _, b := range data {
		if !isPrintableASCII(b) {
			return Value{bytes: data, isBytes: true}
		}
	}
	return Value{str: string(data)}
}

func isPrintableASCII(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b == ' ' || b == '\t' || b == '\n' || b == '\f' || b == '\r':
		return true
	case b >= '!' && b <= '/', b >= ':' && b <= '@', b >= '[' && b <= '`', b >= '{' && b <= '~':
		return true
	default:
		return false
	}
}

// IsBytes reports whether the value was classified as opaque bytes.
func (v Value) IsBytes() bool { return v.isBytes }

// String renders the value for display: the text itself if classified as a
// string, or lowercase hex if classified as bytes.
func (v Value) String() string {
	if v.isBytes {
		return hex.EncodeToString(v.bytes)
	}
	return v.str
}
