package cli

import (
	"strings"
	"testing"

	"github.com/urbancharge/urbancharge/pkg/community"
)

func TestCommunityTable(t *testing.T) {
	uc, err := community.FromNames("A", "B", "C")
	if err != nil {
		t.Fatal(err)
	}
	if err := uc.AddRoad("A", "B"); err != nil {
		t.Fatal(err)
	}
	if err := uc.AddChargingPoint("A"); err != nil {
		t.Fatal(err)
	}

	out := communityTable(uc)
	for _, want := range []string{"City", "Charging point", "Access", iconCharging + " yes", "none"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "ok"); got != 2 {
		t.Errorf("table has %d cities with access, want 2:\n%s", got, out)
	}
}

func TestScoreLine(t *testing.T) {
	uc, err := community.FromNames("A", "B")
	if err != nil {
		t.Fatal(err)
	}

	if got := scoreLine(uc); !strings.Contains(got, "0 of 2") || !strings.Contains(got, "no access: A, B") {
		t.Errorf("scoreLine() = %q", got)
	}

	if err := uc.AddRoad("A", "B"); err != nil {
		t.Fatal(err)
	}
	if err := uc.AddChargingPoint("B"); err != nil {
		t.Fatal(err)
	}
	if got := scoreLine(uc); !strings.Contains(got, "1 of 2") || !strings.Contains(got, "every city has access") {
		t.Errorf("scoreLine() = %q", got)
	}
}

func TestRoadSummary(t *testing.T) {
	uc, err := community.FromNames("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if got := roadSummary(uc); got != "2 cities, no roads yet" {
		t.Errorf("roadSummary() = %q", got)
	}
	if err := uc.AddRoad("B", "A"); err != nil {
		t.Fatal(err)
	}
	if got := roadSummary(uc); !strings.Contains(got, "roads: ") {
		t.Errorf("roadSummary() = %q", got)
	}
}
