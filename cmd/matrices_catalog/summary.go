package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/matrices/pkg/core/catalog"
	"github.com/gomlx/matrices/pkg/support/sets"
	"github.com/gomlx/matrices/pkg/support/xslices"
)

// kindLabel names an entry's element kind: the dtype name, or "any" for the
// generic types.
func kindLabel(entry catalog.Entry) string {
	if entry.DType() == dtypes.InvalidDType {
		return "any"
	}
	return entry.DType().String()
}

// filtered returns the registered entries selected by -kinds, in name order.
// A nil filter keeps everything.
func filtered(filter sets.Set[dtypes.DType]) []catalog.Entry {
	entries := catalog.Entries()
	if filter == nil {
		return entries
	}
	var kept []catalog.Entry
	for _, entry := range entries {
		if filter.Has(entry.DType()) {
			kept = append(kept, entry)
		}
	}
	return kept
}

type kindTotals struct {
	numTypes int64
	elements int64
	bytes    uint64
}

// Summary prints per-kind totals over the registered types: how many types,
// how many elements and bytes one instance of each would take.
func Summary(filter sets.Set[dtypes.DType]) {
	fmt.Println(titleStyle.Render("Catalog Summary"))

	perKind := make(map[string]*kindTotals)
	var all kindTotals
	for _, entry := range filtered(filter) {
		totals := perKind[kindLabel(entry)]
		if totals == nil {
			totals = &kindTotals{}
			perKind[kindLabel(entry)] = totals
		}
		for _, t := range []*kindTotals{totals, &all} {
			t.numTypes++
			t.elements += int64(entry.Size())
			t.bytes += uint64(entry.Memory())
		}
	}

	table := newPlainTable(lipgloss.Left, lipgloss.Right)
	table.Headers("Kind", "Types", "Elements", "Bytes")
	for _, kind := range xslices.SortedKeys(perKind) {
		totals := perKind[kind]
		table.Row(kind,
			humanize.Comma(totals.numTypes),
			humanize.Comma(totals.elements),
			humanize.Bytes(totals.bytes))
	}
	table.Row("all",
		humanize.Comma(all.numTypes),
		humanize.Comma(all.elements),
		humanize.Bytes(all.bytes))
	fmt.Println(table.Render())
}

// List prints one row per registered type.
func List(filter sets.Set[dtypes.DType]) {
	fmt.Println(titleStyle.Render("Catalog Types"))

	table := newPlainTable(lipgloss.Left, lipgloss.Left, lipgloss.Left, lipgloss.Right, lipgloss.Right)
	table.Headers("Name", "Kind", "Shape", "Size", "Bytes")
	for _, entry := range filtered(filter) {
		table.Row(entry.Name(), kindLabel(entry), entry.Shape().String(),
			humanize.Comma(int64(entry.Size())),
			humanize.Bytes(uint64(entry.Memory())))
	}
	fmt.Println(table.Render())
}
