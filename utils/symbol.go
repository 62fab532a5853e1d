package utils

import "strings"

// ParseSymbols split comma separated symbols, trimmed and upper cased, empty ones dropped
func ParseSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, part := range parts {
		symbol := strings.ToUpper(strings.TrimSpace(part))
		if symbol == "" {
			continue
		}

		symbols = append(symbols, symbol)
	}

	return symbols
}
