package requirement

import (
	"encoding/hex"
	"fmt"
	"time"
)

// String renders an expression tree to the textual code requirement DSL.
// It is total: only ever invoked on successfully decoded trees, so it never
// fails.
func (e *Expression) String() string {
	switch e.Kind {
	case False:
		return "never"
	case True:
		return "always"
	case Identifier:
		return "identifier " + e.Text
	case AnchorApple:
		return "anchor apple"
	case AnchorCertificateHash:
		return fmt.Sprintf("anchor %d H\"%s\"", e.Slot, hex.EncodeToString(e.Digest))
	case InfoKeyValueLegacy:
		return fmt.Sprintf("info[%s] = \"%s\"", e.Key, e.InfoValue)
	case And:
		return fmt.Sprintf("(%s) and (%s)", e.Left, e.Right)
	case Or:
		return fmt.Sprintf("(%s) or (%s)", e.Left, e.Right)
	case CodeDirectoryHash:
		return fmt.Sprintf("cdhash H\"%s\"", hex.EncodeToString(e.Digest))
	case Not:
		return fmt.Sprintf("!(%s)", e.Sub)
	case InfoPlistKeyField:
		return fmt.Sprintf("info [%s] %s", e.Key, e.Match)
	case CertificateField:
		return fmt.Sprintf("certificate %d [%s] %s", e.Slot, e.Key, e.Match)
	case CertificateTrusted:
		return fmt.Sprintf("certificate %d trusted", e.Slot)
	case AnchorTrusted:
		return "anchor trusted"
	case CertificateGeneric:
		return fmt.Sprintf("certificate %d [field.%s] %s", e.Slot, e.OID, e.Match)
	case AnchorAppleGeneric:
		return "anchor apple generic"
	case EntitlementsKey:
		return fmt.Sprintf("entitlement [%s] %s", e.Key, e.Match)
	case CertificatePolicy:
		return fmt.Sprintf("certificate %d [policy.%s] %s", e.Slot, e.OID, e.Match)
	case NamedAnchor:
		return "anchor apple " + e.Text
	case NamedCode:
		return fmt.Sprintf("(%s)", e.Text)
	case Platform:
		return fmt.Sprintf("platform = %d", e.Platform)
	case Notarized:
		return "notarized"
	case CertificateFieldDate:
		return fmt.Sprintf("certificate %d [timestamp.%s] %s", e.Slot, e.OID, e.Match)
	case LegacyDeveloperId:
		return "legacy"
	default:
		return fmt.Sprintf("<unknown expression kind %d>", e.Kind)
	}
}

// String renders a match expression to its textual suffix form, e.g.
// `= "value"` or `/* exists */`.
func (m *MatchExpression) String() string {
	switch m.Kind {
	case MatchExists:
		return "/* exists */"
	case MatchAbsent:
		return "absent"
	case MatchEqual:
		return fmt.Sprintf("= \"%s\"", m.Value)
	case MatchContains:
		return fmt.Sprintf("~ \"%s\"", m.Value)
	case MatchBeginsWith:
		return fmt.Sprintf("= \"%s*\"", m.Value)
	case MatchEndsWith:
		return fmt.Sprintf("= \"*%s\"", m.Value)
	case MatchLessThan:
		return fmt.Sprintf("< \"%s\"", m.Value)
	case MatchGreaterThan:
		return fmt.Sprintf("> \"%s\"", m.Value)
	case MatchLessThanEqual:
		return fmt.Sprintf("<= \"%s\"", m.Value)
	case MatchGreaterThanEqual:
		return fmt.Sprintf(">= \"%s\"", m.Value)
	case MatchOn:
		return "= " + rfc3339(m.Time)
	case MatchBefore:
		return "< " + rfc3339(m.Time)
	case MatchAfter:
		return "> " + rfc3339(m.Time)
	case MatchOnOrBefore:
		return "<= " + rfc3339(m.Time)
	case MatchOnOrAfter:
		return ">= " + rfc3339(m.Time)
	default:
		return fmt.Sprintf("<unknown match kind %d>", m.Kind)
	}
}

func rfc3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
