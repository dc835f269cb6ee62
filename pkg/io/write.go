package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/urbancharge/urbancharge/pkg/community"
)

// Write encodes uc in the line-oriented configuration format.
func Write(uc *community.UrbanCommunity, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range uc.Cities() {
		fmt.Fprintf(bw, "ville(%s).\n", c.Name())
	}
	for _, r := range sortedRoads(uc) {
		fmt.Fprintf(bw, "route(%s,%s).\n", r.From, r.To)
	}
	for _, c := range uc.Cities() {
		if c.HasChargingPoint() {
			fmt.Fprintf(bw, "recharge(%s).\n", c.Name())
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Save writes uc to a configuration file at path, replacing it.
func Save(uc *community.UrbanCommunity, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(uc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// sortedRoads returns each road once, endpoints ordered by name, sorted.
func sortedRoads(uc *community.UrbanCommunity) []community.Road {
	roads := uc.Roads()
	for i, r := range roads {
		if strings.Compare(r.From, r.To) > 0 {
			roads[i] = community.Road{From: r.To, To: r.From}
		}
	}
	slices.SortFunc(roads, func(a, b community.Road) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
	return roads
}
