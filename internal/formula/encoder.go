package formula

import (
	"strings"

	"github.com/wonny/bloodage/internal/biomarker"
	"github.com/wonny/bloodage/internal/snapshot"
)

// Encode serializes a validated snapshot into the formula's calculator
// URL. IDs are iterated in sorted order, so identical snapshots always
// encode to byte-identical strings.
func Encode(snap snapshot.Snapshot, f Formula) string {
	params := make([]string, 0, len(snap.Entries))

	for _, id := range snap.IDs() {
		entry := snap.Entries[id]

		switch f.Encoding {
		case EncodingValueUnit:
			valueUnit := entry.Value + "_" + biomarker.NormalizeUnit(entry.Unit)
			params = append(params, string(id)+"="+percentEncode(valueUnit))
		default:
			params = append(params, string(id)+"="+entry.Value)
		}
	}

	return f.BaseURL + strings.Join(params, "&")
}

const upperHex = "0123456789ABCDEF"

// percentEncode escapes everything except RFC 3986 unreserved
// characters. net/url is close but not equivalent: QueryEscape turns
// spaces into '+' and PathEscape leaves sub-delims alone, and the
// receiving calculator's decoder accepts neither. Note a unit already
// normalized to "%25" is escaped again here; the calculator expects the
// doubled escaping.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
