package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urbancharge/urbancharge/pkg/community"
)

type document struct {
	Cities []city `json:"cities"`
	Roads  []road `json:"roads"`
}

type city struct {
	Name          string `json:"name"`
	ChargingPoint bool   `json:"charging_point"`
}

type road struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes uc as JSON and writes it to w.
// Roads are written in the same order as [Write] uses.
// This format can be re-imported with [ReadJSON].
func WriteJSON(uc *community.UrbanCommunity, w io.Writer) error {
	roads := sortedRoads(uc)
	out := document{
		Cities: make([]city, 0, uc.Len()),
		Roads:  make([]road, len(roads)),
	}

	for _, c := range uc.Cities() {
		out.Cities = append(out.Cities, city{Name: c.Name(), ChargingPoint: c.HasChargingPoint()})
	}
	for i, r := range roads {
		out.Roads[i] = road{From: r.From, To: r.To}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes uc to a JSON file at path.
func ExportJSON(uc *community.UrbanCommunity, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(uc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
