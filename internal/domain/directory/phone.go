package directory

import "strings"

// DialDigits deja solo los dígitos ASCII del móvil para construir tel:.
// El texto visible conserva el formato original.
func DialDigits(mobile string) string {
	var b strings.Builder
	b.Grow(len(mobile))
	for i := 0; i < len(mobile); i++ {
		if c := mobile[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
