// SPDX-License-Identifier: MIT
// File: id_fn.go
// Role: node label schemes. Fixture nodes are dense indices; the label is
// stored as the node weight so fixtures stay readable in dumps and diffs.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn renders the label of the idx-th node a constructor creates. It must
// be pure: the same idx always yields the same label.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// AlphanumericIDFn returns a base-36 string for idx, e.g. 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal form of idx. Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the label scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the label scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the label scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the label scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithHexIDs sets the label scheme to HexIDFn.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithAlphanumericIDs sets the label scheme to AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }
