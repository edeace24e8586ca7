package requirement

import "github.com/fooblahblah/codereq/pkg/codesign/types"

// DecodeRequirements reads a count-prefixed list of expression trees: a
// 4-byte big-endian count followed by that many back-to-back encoded
// expressions. It is the payload format found inside a requirement set's
// per-type entry once the blob_header and requirements index have already
// been consumed by the caller.
func DecodeRequirements(data []byte) ([]*Expression, []byte, error) {
	count, data, err := readUint32(data)
	if err != nil {
		return nil, nil, err
	}

	exprs := make([]*Expression, 0, count)
	for i := uint32(0); i < count; i++ {
		var expr *Expression
		expr, data, err = DecodeExpression(data)
		if err != nil {
			return nil, nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, data, nil
}

// DecodeRequirementBlob validates the blob_header that wraps a single
// requirement (magic CSMAGIC_REQUIREMENT) and decodes the expression tree
// that follows it. Most requirement blobs carry a single top-level
// expression; DecodeRequirementBlob returns the full list in case more than
// one is present, matching the wire format's own count prefix.
func DecodeRequirementBlob(data []byte) ([]*Expression, []byte, error) {
	payload, err := types.ValidateBlobHeader(data, uint32(types.MAGIC_REQUIREMENT))
	if err != nil {
		return nil, nil, malformed("malformed blob header")
	}
	return DecodeRequirements(payload)
}
