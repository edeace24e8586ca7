package requirement

import (
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

var cmpOpts = cmp.Options{
	cmp.AllowUnexported(Value{}),
}

func TestDecodeRequirements_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want []*Expression
	}{
		{
			name: "False",
			hex:  "0000000100000000",
			want: []*Expression{{Kind: False}},
		},
		{
			name: "True",
			hex:  "0000000100000001",
			want: []*Expression{{Kind: True}},
		},
		{
			name: "Identifier with one pad byte",
			hex:  "000000010000000200000007 666f6f2e626172 00",
			want: []*Expression{{Kind: Identifier, Text: "foo.bar"}},
		},
		{
			name: "AnchorCertificateHash has no padding after digest",
			hex:  "0000000100000004 ffffffff 00000014 deadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
			want: []*Expression{{
				Kind:   AnchorCertificateHash,
				Slot:   -1,
				Digest: mustHexNoT("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"),
			}},
		},
		{
			name: "And(True, False)",
			hex:  "00000001 00000006 00000001 00000000",
			want: []*Expression{{
				Kind:  And,
				Left:  &Expression{Kind: True},
				Right: &Expression{Kind: False},
			}},
		},
		{
			name: "InfoPlistKeyField with Exists",
			hex:  "00000001 0000000a 00000003 6b6579 00 00000000",
			want: []*Expression{{
				Kind:  InfoPlistKeyField,
				Key:   "key",
				Match: &MatchExpression{Kind: MatchExists},
			}},
		},
		{
			name: "InfoPlistKeyField with Equal(String)",
			hex:  "00000001 0000000a 00000003 6b6579 00 00000001 00000005 76616c7565 000000",
			want: []*Expression{{
				Kind:  InfoPlistKeyField,
				Key:   "key",
				Match: &MatchExpression{Kind: MatchEqual, Value: NewValue([]byte("value"))},
			}},
		},
		{
			name: "InfoPlistKeyField with On(timestamp)",
			hex:  "00000001 0000000a 00000003 6b6579 00 00000009 00000000 605fca30",
			want: []*Expression{{
				Kind: InfoPlistKeyField,
				Key:  "key",
				Match: &MatchExpression{
					Kind: MatchOn,
					Time: time.Unix(1616890416, 0).UTC(),
				},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustHex(t, stripSpaces(tt.hex))
			got, tail, err := DecodeRequirements(data)
			if err != nil {
				t.Fatalf("DecodeRequirements: %v", err)
			}
			if len(tail) != 0 {
				t.Errorf("unconsumed tail: % x", tail)
			}
			if diff := cmp.Diff(tt.want, got, cmpOpts); diff != "" {
				t.Errorf("decoded tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRequirementBlob(t *testing.T) {
	data := mustHex(t, stripSpaces("fade0c00 00000010 00000001 00000000"))
	got, tail, err := DecodeRequirementBlob(data)
	if err != nil {
		t.Fatalf("DecodeRequirementBlob: %v", err)
	}
	if len(tail) != 0 {
		t.Errorf("unconsumed tail: % x", tail)
	}
	want := []*Expression{{Kind: False}}
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Errorf("decoded tree mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRequirementBlob_BadMagic(t *testing.T) {
	data := mustHex(t, stripSpaces("deadbeef 00000010 00000001 00000000"))
	_, _, err := DecodeRequirementBlob(data)
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedError, got %v (%T)", err, err)
	}
}

func TestDecodeRequirements_EmptyListIsEmpty(t *testing.T) {
	data := mustHex(t, "00000000")
	got, tail, err := DecodeRequirements(data)
	if err != nil {
		t.Fatalf("DecodeRequirements: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d entries", len(got))
	}
	if len(tail) != 0 {
		t.Errorf("unconsumed tail: % x", tail)
	}
}

func TestDecodeRequirements_UnknownOpCode(t *testing.T) {
	data := mustHex(t, stripSpaces("0000000100ffffff"))
	_, _, err := DecodeRequirements(data)
	var unknown *UnknownOpCodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownOpCodeError, got %v (%T)", err, err)
	}
	if unknown.Op != 0x00ffffff {
		t.Errorf("unknown.Op = %#x, want %#x", unknown.Op, 0x00ffffff)
	}
}

func TestDecodeRequirements_UnknownMatchCode(t *testing.T) {
	data := mustHex(t, stripSpaces("000000010000000a00000003 6b6579 00 000000ff"))
	_, _, err := DecodeRequirements(data)
	var unknown *UnknownMatchError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownMatchError, got %v (%T)", err, err)
	}
	if unknown.Code != 0xff {
		t.Errorf("unknown.Code = %#x, want 0xff", unknown.Code)
	}
}

func TestDecodeRequirements_InvalidUTF8Identifier(t *testing.T) {
	data := mustHex(t, stripSpaces("0000000100000002 00000002 ffff 0000"))
	_, _, err := DecodeRequirements(data)
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedError, got %v (%T)", err, err)
	}
}

func TestDecodeRequirements_Truncated(t *testing.T) {
	data := mustHex(t, "000000010000")
	_, _, err := DecodeRequirements(data)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestExpressionString(t *testing.T) {
	tests := []struct {
		name string
		expr *Expression
		want string
	}{
		{"False", &Expression{Kind: False}, "never"},
		{"True", &Expression{Kind: True}, "always"},
		{"Identifier", &Expression{Kind: Identifier, Text: "com.example.app"}, "identifier com.example.app"},
		{"AnchorApple", &Expression{Kind: AnchorApple}, "anchor apple"},
		{
			"AnchorCertificateHash",
			&Expression{Kind: AnchorCertificateHash, Slot: -1, Digest: mustHexNoT("deadbeef")},
			`anchor -1 H"deadbeef"`,
		},
		{
			"And",
			&Expression{Kind: And, Left: &Expression{Kind: True}, Right: &Expression{Kind: False}},
			"(always) and (never)",
		},
		{
			"Not",
			&Expression{Kind: Not, Sub: &Expression{Kind: False}},
			"!(never)",
		},
		{
			"CodeDirectoryHash",
			&Expression{Kind: CodeDirectoryHash, Digest: mustHexNoT("aabbcc")},
			`cdhash H"aabbcc"`,
		},
		{
			"InfoPlistKeyField with Exists",
			&Expression{Kind: InfoPlistKeyField, Key: "key", Match: &MatchExpression{Kind: MatchExists}},
			"info [key] /* exists */",
		},
		{
			"CertificateTrusted",
			&Expression{Kind: CertificateTrusted, Slot: 0},
			"certificate 0 trusted",
		},
		{
			"CertificateGeneric",
			&Expression{
				Kind:  CertificateGeneric,
				Slot:  -1,
				OID:   OID{0x55, 0x04, 0x03},
				Match: &MatchExpression{Kind: MatchEqual, Value: NewValue([]byte("example"))},
			},
			`certificate -1 [field.2.5.4.3] = "example"`,
		},
		{"NamedAnchor", &Expression{Kind: NamedAnchor, Text: "apple"}, "anchor apple apple"},
		{"NamedCode", &Expression{Kind: NamedCode, Text: "host"}, "(host)"},
		{"Platform", &Expression{Kind: Platform, Platform: 1}, "platform = 1"},
		{"Notarized", &Expression{Kind: Notarized}, "notarized"},
		{"LegacyDeveloperId", &Expression{Kind: LegacyDeveloperId}, "legacy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchExpressionString(t *testing.T) {
	ts := time.Unix(1616890416, 0).UTC()
	tests := []struct {
		name string
		m    *MatchExpression
		want string
	}{
		{"Exists", &MatchExpression{Kind: MatchExists}, "/* exists */"},
		{"Absent", &MatchExpression{Kind: MatchAbsent}, "absent"},
		{"Equal", &MatchExpression{Kind: MatchEqual, Value: NewValue([]byte("v"))}, `= "v"`},
		{"Contains", &MatchExpression{Kind: MatchContains, Value: NewValue([]byte("v"))}, `~ "v"`},
		{"BeginsWith", &MatchExpression{Kind: MatchBeginsWith, Value: NewValue([]byte("v"))}, `= "v*"`},
		{"EndsWith", &MatchExpression{Kind: MatchEndsWith, Value: NewValue([]byte("v"))}, `= "*v"`},
		{"On", &MatchExpression{Kind: MatchOn, Time: ts}, "= 2021-03-28T00:13:36Z"},
		{"Before", &MatchExpression{Kind: MatchBefore, Time: ts}, "< 2021-03-28T00:13:36Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueClassification(t *testing.T) {
	if v := NewValue([]byte("hello, world!")); v.IsBytes() {
		t.Errorf("printable ASCII text classified as Bytes")
	}
	if v := NewValue([]byte{0x00, 0xff}); !v.IsBytes() {
		t.Errorf("non-ASCII bytes classified as String")
	}
	if got, want := NewValue([]byte{0xde, 0xad}).String(), "dead"; got != want {
		t.Errorf("Bytes.String() = %q, want %q", got, want)
	}
}

func TestOIDString(t *testing.T) {
	tests := []struct {
		name string
		oid  OID
		want string
	}{
		{"commonName", OID{0x55, 0x04, 0x03}, "2.5.4.3"},
		{"empty", OID{}, ""},
		{"truncated final arc", OID{0x55, 0x84}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.oid.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func mustHexNoT(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func stripSpaces(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
