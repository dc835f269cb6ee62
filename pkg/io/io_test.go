package io

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/urbancharge/urbancharge/pkg/community"
	errs "github.com/urbancharge/urbancharge/pkg/errors"
)

const sample = `ville(A).
ville(B).
ville(C).
route(A,B).
route(B,C).
recharge(B).
`

func TestParse(t *testing.T) {
	uc, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if uc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", uc.Len())
	}
	if got := uc.ChargingSet(); !slices.Equal(got, []string{"B"}) {
		t.Errorf("ChargingSet() = %v, want [B]", got)
	}
	if d, _ := uc.Degree("B"); d != 2 {
		t.Errorf("Degree(B) = %d, want 2", d)
	}
	if !uc.IsValid() {
		t.Error("sample should be valid")
	}
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	input := "% cities\nville(A).\n\n  ville(B).  \n# roads\nroute( A , B ).\n"
	uc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if uc.Len() != 2 || len(uc.Roads()) != 1 {
		t.Errorf("Len() = %d, roads = %d, want 2 and 1", uc.Len(), len(uc.Roads()))
	}
}

func TestParseOptionalSections(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLen   int
		wantRoads int
		wantScore int
	}{
		{"Empty", "", 0, 0, 0},
		{"CitiesOnly", "ville(A).\nville(B).\n", 2, 0, 0},
		{"NoRoads", "ville(A).\nrecharge(A).\n", 1, 0, 1},
		{"NoCharging", "ville(A).\nville(B).\nroute(A,B).\n", 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if uc.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", uc.Len(), tt.wantLen)
			}
			if got := len(uc.Roads()); got != tt.wantRoads {
				t.Errorf("roads = %d, want %d", got, tt.wantRoads)
			}
			if uc.Score() != tt.wantScore {
				t.Errorf("Score() = %d, want %d", uc.Score(), tt.wantScore)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCode    errs.Code
		wantLine    int
		wantSection Section
	}{
		{"UnknownRoadCity", "ville(A).\nroute(A,Z).\n", errs.ErrCodeUnknownCity, 2, SectionRoads},
		{"UnknownChargingCity", "ville(A).\nrecharge(Z).\n", errs.ErrCodeUnknownCity, 2, SectionCharging},
		{"SelfLoop", "ville(A).\nroute(A,a).\n", errs.ErrCodeSelfLoop, 2, SectionRoads},
		{"DuplicateCharging", "ville(A).\nrecharge(A).\nrecharge(A).\n", errs.ErrCodeAlreadyHasPoint, 3, SectionCharging},
		{"DuplicateCity", "ville(A).\nville(B).\nville(a).\n", errs.ErrCodeDuplicateCity, 3, SectionCities},
		{"Garbage", "ville(A).\nhello\n", errs.ErrCodeInvalidFormat, 2, SectionCities},
		{"CityWithSpace", "ville(Saint Etienne).\n", errs.ErrCodeInvalidFormat, 1, SectionCities},
		{"CityAfterRoads", "ville(A).\nville(B).\nroute(A,B).\nville(C).\n", errs.ErrCodeInvalidFormat, 4, SectionRoads},
		{"RoadAfterCharging", "ville(A).\nville(B).\nrecharge(A).\nroute(A,B).\n", errs.ErrCodeInvalidFormat, 4, SectionCharging},
		{"MissingDot", "ville(A)\n", errs.ErrCodeInvalidFormat, 1, SectionCities},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if uc != nil {
				t.Error("community should be nil on error")
			}
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", err)
			}
			if !errs.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want cause %v", err, tt.wantCode)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v does not wrap *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if pe.Section != tt.wantSection {
				t.Errorf("Section = %v, want %v", pe.Section, tt.wantSection)
			}
			if pe.File != "" {
				t.Errorf("File = %q, want empty for a reader", pe.File)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "city.txt")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	uc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if uc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", uc.Len())
	}
}

func TestLoadErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(path, []byte("ville(A).\nroute(A,B).\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load error = %v, want *ParseError", err)
	}
	if pe.File != path {
		t.Errorf("File = %q, want %q", pe.File, path)
	}
	if want := path + ":2"; !strings.Contains(pe.Error(), want) {
		t.Errorf("Error() = %q, want it to contain %q", pe.Error(), want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Load error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWrite(t *testing.T) {
	uc, err := community.FromNames("C", "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range [][2]string{{"C", "A"}, {"B", "A"}, {"C", "B"}} {
		if err := uc.AddRoad(r[0], r[1]); err != nil {
			t.Fatal(err)
		}
	}
	if err := uc.AddChargingPoint("A"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(uc, &buf); err != nil {
		t.Fatal(err)
	}

	want := `ville(C).
ville(A).
ville(B).
route(A,B).
route(A,C).
route(B,C).
recharge(A).
`
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	uc, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(uc, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != sample {
		t.Errorf("round trip =\n%s\nwant\n%s", buf.String(), sample)
	}
}

func TestSaveLoad(t *testing.T) {
	uc, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := Save(uc, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sample {
		t.Errorf("saved file =\n%s\nwant\n%s", data, sample)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	uc, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(uc, &buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	var a, b bytes.Buffer
	if err := Write(uc, &a); err != nil {
		t.Fatal(err)
	}
	if err := Write(got, &b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("JSON round trip =\n%s\nwant\n%s", b.String(), a.String())
	}
}

func TestWriteJSON(t *testing.T) {
	uc, err := Parse(strings.NewReader("ville(A).\nville(B).\nroute(B,A).\nrecharge(B).\n"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(uc, &buf); err != nil {
		t.Fatal(err)
	}

	want := `{
  "cities": [
    {
      "name": "A",
      "charging_point": false
    },
    {
      "name": "B",
      "charging_point": true
    }
  ],
  "roads": [
    {
      "from": "A",
      "to": "B"
    }
  ]
}
`
	if buf.String() != want {
		t.Errorf("WriteJSON() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errs.Code
	}{
		{"Malformed", `{"cities": [`, errs.ErrCodeInvalidFormat},
		{"DuplicateCity", `{"cities":[{"name":"A"},{"name":"a"}]}`, errs.ErrCodeDuplicateCity},
		{"UnknownRoadCity", `{"cities":[{"name":"A"}],"roads":[{"from":"A","to":"B"}]}`, errs.ErrCodeUnknownCity},
		{"SelfLoop", `{"cities":[{"name":"A"}],"roads":[{"from":"A","to":"A"}]}`, errs.ErrCodeSelfLoop},
		{"EmptyName", `{"cities":[{"name":""}]}`, errs.ErrCodeInvalidInput},
		{"NameWithSpace", `{"cities":[{"name":"Saint Etienne","charging_point":true},{"name":"a-b"}]}`, errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := ReadJSON(strings.NewReader(tt.input))
			if !errs.Is(err, tt.wantCode) {
				t.Errorf("ReadJSON error = %v, want %v", err, tt.wantCode)
			}
			if uc != nil {
				t.Error("community should be nil on error")
			}
		})
	}
}

// A community read from JSON must be writable as text that loads back.
func TestJSONToTextRoundTrip(t *testing.T) {
	const input = `{
  "cities": [
    {"name": "Saint_Etienne", "charging_point": true},
    {"name": "Lyon"},
    {"name": "Vienne2"}
  ],
  "roads": [
    {"from": "Lyon", "to": "Saint_Etienne"},
    {"from": "Vienne2", "to": "Lyon"}
  ]
}`
	uc, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	var text bytes.Buffer
	if err := Write(uc, &text); err != nil {
		t.Fatal(err)
	}
	back, err := Parse(&text)
	if err != nil {
		t.Fatalf("Parse(Write(ReadJSON())) error: %v", err)
	}
	if back.DisplayText() != uc.DisplayText() || len(back.Roads()) != 2 {
		t.Errorf("round trip =\n%s\nwant\n%s", back.DisplayText(), uc.DisplayText())
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"city.json", FormatJSON},
		{"CITY.JSON", FormatJSON},
		{"city.txt", FormatText},
		{"city", FormatText},
		{"dir.json/city.pl", FormatText},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSaveFileLoadFile(t *testing.T) {
	uc, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"out.json", "out.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := SaveFile(uc, path); err != nil {
				t.Fatal(err)
			}
			got, err := LoadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got.ChargingSet(), uc.ChargingSet()) || len(got.Roads()) != len(uc.Roads()) {
				t.Errorf("LoadFile(%s) = %v, want %v", name, got, uc)
			}
		})
	}
}
