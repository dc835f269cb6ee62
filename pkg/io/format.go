package io

import (
	"path/filepath"
	"strings"

	"github.com/urbancharge/urbancharge/pkg/community"
)

// Format is a file encoding for communities.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// FormatOf returns FormatJSON for .json paths and FormatText otherwise.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatText
}

// LoadFile reads path in the format its extension names.
func LoadFile(path string) (*community.UrbanCommunity, error) {
	if FormatOf(path) == FormatJSON {
		return ImportJSON(path)
	}
	return Load(path)
}

// SaveFile writes uc to path in the format its extension names.
func SaveFile(uc *community.UrbanCommunity, path string) error {
	if FormatOf(path) == FormatJSON {
		return ExportJSON(uc, path)
	}
	return Save(uc, path)
}
