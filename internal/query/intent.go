package query

import "strings"

const categoryKeyword = "category"

type IntentKind int

const (
	IntentInvalid IntentKind = iota
	IntentProduct
	IntentSupplier
)

func (k IntentKind) String() string {
	switch k {
	case IntentProduct:
		return "product"
	case IntentSupplier:
		return "supplier"
	default:
		return "invalid"
	}
}

// Intent es el resultado de clasificar una consulta de texto libre.
// Category solo tiene sentido cuando Kind != IntentInvalid.
type Intent struct {
	Kind     IntentKind
	Category string
}

// Classify aplica dos comprobaciones de subcadena, sin distinguir mayúsculas,
// en este orden: "product"+"category" y luego "supplier"+"category".
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, categoryKeyword) {
		return Intent{Kind: IntentInvalid}
	}

	switch {
	case strings.Contains(lower, "product"):
		return Intent{Kind: IntentProduct, Category: ExtractCategory(text)}
	case strings.Contains(lower, "supplier"):
		return Intent{Kind: IntentSupplier, Category: ExtractCategory(text)}
	default:
		return Intent{Kind: IntentInvalid}
	}
}

// ExtractCategory devuelve lo que sigue a la última aparición de "category",
// recortando espacios. El resto se usa tal cual: no se normalizan mayúsculas ni puntuación.
func ExtractCategory(text string) string {
	idx := strings.LastIndex(text, categoryKeyword)
	if lower := strings.ToLower(text); len(lower) == len(text) {
		idx = strings.LastIndex(lower, categoryKeyword)
	}
	if idx < 0 {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[idx+len(categoryKeyword):])
}
