package utils

import (
	"fmt"
	"strings"
)

// FormatBRL formata um valor em centavos como moeda brasileira (R$ 1.234,56).
// O valor interno é sempre inteiro em centavos; esta é a única conversão para
// texto de exibição.
func FormatBRL(amountInCents int64) string {
	negative := amountInCents < 0
	if negative {
		amountInCents = -amountInCents
	}

	reais := amountInCents / 100
	cents := amountInCents % 100

	digits := fmt.Sprintf("%d", reais)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := fmt.Sprintf("R$ %s,%02d", strings.Join(groups, "."), cents)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// TruncateToken exibe só o começo de um token opaco (credenciais de clientes
// nunca aparecem inteiras no painel).
func TruncateToken(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}
