package requirement

import "encoding/asn1"

// OID carries the raw DER content octets of an ASN.1 OBJECT IDENTIFIER
// (without the tag/length bytes). The decoder never validates that these
// bytes are a well-formed OID; String decodes them on demand for display.
type OID []byte

// String decodes the base-128 arc encoding and renders the dotted-decimal
// form via the standard library's own ObjectIdentifier formatting, the
// host ecosystem's usual OID display convention. An OID that fails to
// decode (truncated final arc) renders as empty, mirroring the teacher's
// original best-effort behavior for display-only code.
func (o OID) String() string {
	arcs, ok := decodeOIDArcs(o)
	if !ok {
		return ""
	}
	return asn1.ObjectIdentifier(arcs).String()
}

// decodeOIDArcs decodes the base-128, high-bit-continuation arc encoding
// used by BER/DER OBJECT IDENTIFIER content octets. The first arc is split
// back into its conventional two leading components (X.40+Y).
func decodeOIDArcs(data []byte) ([]int, bool) {
	if len(data) == 0 {
		return nil, false
	}

	var arcs []int
	haveFirst := false
	arc := 0
	pending := false

	for _, b := range data {
		arc = arc*128 + int(b&0x7f)
		pending = b&0x80 != 0
		if pending {
			continue
		}
		if !haveFirst {
			q1 := arc / 40
			if q1 > 2 {
				q1 = 2
			}
			arcs = append(arcs, q1, arc-q1*40)
			haveFirst = true
		} else {
			arcs = append(arcs, arc)
		}
		arc = 0
	}
	if !haveFirst || pending {
		return nil, false
	}
	return arcs, true
}
