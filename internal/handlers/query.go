package handlers

import (
	"fmt"
	"strings"
)

// soqlEscaper escapes characters that would end or alter a quoted SOQL literal.
var soqlEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// EscapeSOQL escapes s for use inside single quotes.
func EscapeSOQL(s string) string {
	return soqlEscaper.Replace(s)
}

// BuildProductQuery returns the product catalog query, filtered on Family
// when family is non-empty. The result is always capped at ProductLimit rows.
func BuildProductQuery(family string) string {
	var sb strings.Builder
	sb.WriteString(ProductSelect)
	if family != "" {
		fmt.Fprintf(&sb, " WHERE Family = '%s'", EscapeSOQL(family))
	}
	fmt.Fprintf(&sb, " LIMIT %d", ProductLimit)
	return sb.String()
}
