package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urbancharge/urbancharge/pkg/community"
	errs "github.com/urbancharge/urbancharge/pkg/errors"
)

// ReadJSON decodes a JSON community from r.
//
// Each city must have a unique "name"; "charging_point" defaults to false.
// Each road must reference declared cities and join two different ones.
//
// Errors are INVALID_FORMAT for malformed JSON and INVALID_CONFIG wrapping the
// community error otherwise, with the offending city or road in the message.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*community.UrbanCommunity, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode")
	}

	cities := make([]community.City, len(data.Cities))
	for i, c := range data.Cities {
		cities[i] = community.NewCity(c.Name)
	}
	uc, err := community.New(cities)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "cities")
	}
	for _, r := range data.Roads {
		if err := uc.AddRoad(r.From, r.To); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "road %s-%s", r.From, r.To)
		}
	}
	for _, c := range data.Cities {
		if !c.ChargingPoint {
			continue
		}
		if err := uc.AddChargingPoint(c.Name); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "city %s", c.Name)
		}
	}

	return uc, nil
}

// ImportJSON reads the JSON file at path.
func ImportJSON(path string) (*community.UrbanCommunity, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
