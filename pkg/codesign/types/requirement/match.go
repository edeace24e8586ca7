package requirement

import "time"

// MatchKind identifies which match-expression variant a MatchExpression
// holds. The zero value is MatchExists.
type MatchKind uint8

const (
	MatchExists MatchKind = iota
	MatchEqual
	MatchContains
	MatchBeginsWith
	MatchEndsWith
	MatchLessThan
	MatchGreaterThan
	MatchLessThanEqual
	MatchGreaterThanEqual
	MatchOn
	MatchBefore
	MatchAfter
	MatchOnOrBefore
	MatchOnOrAfter
	MatchAbsent
)

// matchCode is the wire-format match-type tag, distinct from MatchKind only
// in that it is what actually appears on the wire (MatchKind happens to
// share the same numbering, but the two are kept separate so a future wire
// revision can renumber one without touching the other).
type matchCode uint32

const (
	codeExists matchCode = iota
	codeEqual
	codeContains
	codeBeginsWith
	codeEndsWith
	codeLessThan
	codeGreaterThan
	codeLessThanEqual
	codeGreaterThanEqual
	codeOn
	codeBefore
	codeAfter
	codeOnOrBefore
	codeOnOrAfter
	codeAbsent
)

// MatchExpression is a single match-suffix predicate, e.g. `= "value"` or
// `exists`, attached to a field-valued Expression (InfoPlistKeyField,
// EntitlementsKey, CertificateField, CertificateGeneric, CertificatePolicy,
// CertificateFieldDate).
type MatchExpression struct {
	Kind  MatchKind
	Value Value     // set for Equal..GreaterThanEqual
	Time  time.Time // set for On..OnOrAfter, always UTC
}

// DecodeMatchExpression reads a match-type tag and its payload from the
// front of data and returns the decoded MatchExpression plus the
// unconsumed remainder.
func DecodeMatchExpression(data []byte) (MatchExpression, []byte, error) {
	raw, data, err := readUint32(data)
	if err != nil {
		return MatchExpression{}, nil, err
	}
	code := matchCode(raw)

	switch code {
	case codeExists:
		return MatchExpression{Kind: MatchExists}, data, nil
	case codeAbsent:
		return MatchExpression{Kind: MatchAbsent}, data, nil
	case codeEqual, codeContains, codeBeginsWith, codeEndsWith,
		codeLessThan, codeGreaterThan, codeLessThanEqual, codeGreaterThanEqual:
		value, data, err := readBlock(data)
		if err != nil {
			return MatchExpression{}, nil, err
		}
		return MatchExpression{Kind: matchValueKind(code), Value: NewValue(value)}, data, nil
	case codeOn, codeBefore, codeAfter, codeOnOrBefore, codeOnOrAfter:
		seconds, data, err := readInt64(data)
		if err != nil {
			return MatchExpression{}, nil, err
		}
		return MatchExpression{Kind: matchTimeKind(code), Time: time.Unix(seconds, 0).UTC()}, data, nil
	default:
		return MatchExpression{}, nil, unknownMatch(raw)
	}
}

func matchValueKind(code matchCode) MatchKind {
	switch code {
	case codeEqual:
		return MatchEqual
	case codeContains:
		return MatchContains
	case codeBeginsWith:
		return MatchBeginsWith
	case codeEndsWith:
		return MatchEndsWith
	case codeLessThan:
		return MatchLessThan
	case codeGreaterThan:
		return MatchGreaterThan
	case codeLessThanEqual:
		return MatchLessThanEqual
	case codeGreaterThanEqual:
		return MatchGreaterThanEqual
	}
	panic("unreachable match value code")
}

func matchTimeKind(code matchCode) MatchKind {
	switch code {
	case codeOn:
		return MatchOn
	case codeBefore:
		return MatchBefore
	case codeAfter:
		return MatchAfter
	case codeOnOrBefore:
		return MatchOnOrBefore
	case codeOnOrAfter:
		return MatchOnOrAfter
	}
	panic("unreachable match time code")
}
