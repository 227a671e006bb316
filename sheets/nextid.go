// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"fmt"
	"math/big"
	"strings"
)

// Row is one record read from a sheet, cells in the sheet's column order.
type Row []string

// IDWidth is the minimum width of a formatted identifier.
const IDWidth = 3

// ComputeNextID returns the identifier that follows the largest numeric id in
// column 0. rows[0] is the header and is never considered. Only cells made
// entirely of decimal digits count. Ids of any length compare exactly.
func ComputeNextID(rows []Row) string {
	max := new(big.Int)
	n := new(big.Int)
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		cell := strings.TrimSpace(rows[i][0])
		if !isDigits(cell) {
			continue
		}
		n.SetString(cell, 10)
		if n.Cmp(max) > 0 {
			max.Set(n)
		}
	}
	return padID(max.Add(max, big.NewInt(1)).String())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func padID(s string) string {
	if len(s) >= IDWidth {
		return s
	}
	return strings.Repeat("0", IDWidth-len(s)) + s
}

// FormatID left-pads n with zeroes to IDWidth. Wider values keep their natural width.
func FormatID(n int) string {
	return fmt.Sprintf("%0*d", IDWidth, n)
}
