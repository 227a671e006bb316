// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestComputeNextID(t *testing.T) {
	header := Row{"id", "title"}

	tests := []struct {
		name string
		rows []Row
		want string
	}{
		{"nil rows", nil, "001"},
		{"header only", []Row{header}, "001"},
		{"non-numeric id", []Row{header, {"abc", "x"}}, "001"},
		{"unordered ids", []Row{header, {"003", "a"}, {"007", "b"}, {"002", "c"}}, "008"},
		{"max 41", []Row{header, {"41"}}, "042"},
		{"max 999 grows past width", []Row{header, {"999"}}, "1000"},
		{"empty cells ignored", []Row{header, {""}, {"005"}, {}}, "006"},
		{"negative ignored", []Row{header, {"-20"}}, "001"},
		{"zero ignored", []Row{header, {"000"}}, "001"},
		{"whitespace trimmed", []Row{header, {" 012 "}}, "013"},
		{"numeric header skipped", []Row{{"900"}, {"004"}}, "005"},
		{"mixed", []Row{header, {"x1"}, {"010"}, {"1e3"}, {"9"}}, "011"},
		{"signed ignored", []Row{header, {"+12"}, {"004"}}, "005"},
		{"int64 max steps past", []Row{header, {"9223372036854775807"}}, "9223372036854775808"},
		{"beyond uint64", []Row{header, {"18446744073709551616"}, {"7"}}, "18446744073709551617"},
		{"longer id wins over padded", []Row{header, {"0099"}, {"100"}}, "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeNextID(tt.rows))
		})
	}
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "001", FormatID(1))
	assert.Equal(t, "042", FormatID(42))
	assert.Equal(t, "999", FormatID(999))
	assert.Equal(t, "1000", FormatID(1000))
	assert.Equal(t, "123456", FormatID(123456))
}

func TestComputeNextID_NoNumericIDs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOf(rapid.StringMatching(`[a-zA-Z _-]{0,8}`)).Draw(t, "ids")
		rows := []Row{{"id"}}
		for _, id := range ids {
			rows = append(rows, Row{id, "payload"})
		}
		if got := ComputeNextID(rows); got != "001" {
			t.Fatalf("ComputeNextID(%v) = %q, want 001", ids, got)
		}
	})
}

func TestComputeNextID_MaxPlusOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfN(rapid.IntRange(1, 50000), 1, 40).Draw(t, "ids")
		noise := rapid.SliceOf(rapid.StringMatching(`[a-z]{1,4}`)).Draw(t, "noise")
		headerID := rapid.IntRange(0, 1000000).Draw(t, "header")

		rows := []Row{{strconv.Itoa(headerID)}}
		max := 0
		for _, id := range ids {
			if id > max {
				max = id
			}
			rows = append(rows, Row{FormatID(id)})
		}
		for _, n := range noise {
			rows = append(rows, Row{n})
		}

		got := ComputeNextID(rows)
		n, err := strconv.Atoi(got)
		if err != nil {
			t.Fatalf("ComputeNextID returned non-numeric %q", got)
		}
		if n != max+1 {
			t.Fatalf("ComputeNextID = %q, want %d", got, max+1)
		}
		if len(got) < IDWidth {
			t.Fatalf("ComputeNextID = %q, shorter than %d", got, IDWidth)
		}
		if max+1 < 1000 && len(got) != IDWidth {
			t.Fatalf("ComputeNextID = %q, want width %d", got, IDWidth)
		}
	})
}

func TestLookup(t *testing.T) {
	for _, s := range All() {
		got, ok := Lookup(s.Name)
		assert.True(t, ok, s.Name)
		assert.Equal(t, "id", got.Columns[0])
		assert.Equal(t, s.Columns, []string(got.Header()))
	}

	_, ok := Lookup("inventory")
	assert.False(t, ok)
}

func TestHeaderIsACopy(t *testing.T) {
	s, _ := Lookup(Customs)
	h := s.Header()
	h[0] = "changed"

	again, _ := Lookup(Customs)
	assert.Equal(t, "id", again.Columns[0])
}
