package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsValues(t *testing.T) {
	rows := []Row{
		{Label: "Branch Type", Value: "Head Post Office"},
		{Label: "State", Value: "Maharashtra"},
	}
	got := Format(rows, 0, 2)
	want := []string{
		"Branch Type  Head Post Office",
		"State        Maharashtra",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatHonoursMinimumWidth(t *testing.T) {
	got := Format([]Row{{Label: "A", Value: "x"}}, 4, 0)
	if len(got) != 1 || got[0] != "A    x" {
		t.Fatalf("unexpected row %q", got)
	}
	if Format(nil, 10, 2) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestCompactDropsBlankValues(t *testing.T) {
	rows := Compact(Row{"Division", "Pune City West"}, Row{"Region", " "}, Row{"Block", ""})
	if len(rows) != 1 || rows[0].Label != "Division" {
		t.Fatalf("unexpected rows %#v", rows)
	}
	if LabelWidth(rows) != len("Division") {
		t.Fatalf("unexpected label width %d", LabelWidth(rows))
	}
}
