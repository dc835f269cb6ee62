package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/urbancharge/urbancharge/pkg/community"
	errs "github.com/urbancharge/urbancharge/pkg/errors"
)

// Section identifies a part of the line-oriented configuration format.
type Section int

const (
	// SectionCities holds ville(NAME). lines.
	SectionCities Section = iota
	// SectionRoads holds route(NAME,NAME). lines.
	SectionRoads
	// SectionCharging holds recharge(NAME). lines.
	SectionCharging
)

// String returns the section name used in parse errors.
func (s Section) String() string {
	switch s {
	case SectionCities:
		return "cities"
	case SectionRoads:
		return "roads"
	case SectionCharging:
		return "charging points"
	}
	return "unknown"
}

var (
	cityLine     = regexp.MustCompile(`^ville\(\s*(\w+)\s*\)\.$`)
	roadLine     = regexp.MustCompile(`^route\(\s*(\w+)\s*,\s*(\w+)\s*\)\.$`)
	chargingLine = regexp.MustCompile(`^recharge\(\s*(\w+)\s*\)\.$`)
)

// ParseError describes a configuration line that could not be applied.
type ParseError struct {
	File    string // Empty when parsing a reader
	Line    int    // 1-based
	Section Section
	Text    string // The offending line, trimmed
	Err     error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.File != "" {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	return fmt.Sprintf("%s (%s): %q: %v", loc, e.Section, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the configuration file at path.
func Load(path string) (*community.UrbanCommunity, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return parse(f, path)
}

// Parse reads a configuration from r. Parse does not close r.
func Parse(r io.Reader) (*community.UrbanCommunity, error) {
	return parse(r, "")
}

type parser struct {
	file    string
	line    int
	text    string
	section Section

	names     []string
	firstLine map[string]int // lower-cased name -> declaring line
	uc        *community.UrbanCommunity
}

func parse(r io.Reader, file string) (*community.UrbanCommunity, error) {
	p := &parser{file: file, firstLine: make(map[string]int)}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		p.text = strings.TrimSpace(sc.Text())
		if p.text == "" || strings.HasPrefix(p.text, "%") || strings.HasPrefix(p.text, "#") {
			continue
		}
		if err := p.apply(); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if err := p.build(); err != nil {
		return nil, err
	}
	return p.uc, nil
}

// apply examines the current line in the current section, moving on to later
// sections until one matches. A line no section accepts is reported in the
// section it was first examined in.
func (p *parser) apply() error {
	start := p.section
	for {
		switch p.section {
		case SectionCities:
			if m := cityLine.FindStringSubmatch(p.text); m != nil {
				return p.addCity(m[1])
			}
			if err := p.build(); err != nil {
				return err
			}
		case SectionRoads:
			if m := roadLine.FindStringSubmatch(p.text); m != nil {
				if err := p.uc.AddRoad(m[1], m[2]); err != nil {
					return p.fail(err)
				}
				return nil
			}
		case SectionCharging:
			if m := chargingLine.FindStringSubmatch(p.text); m != nil {
				if err := p.uc.AddChargingPoint(m[1]); err != nil {
					return p.fail(err)
				}
				return nil
			}
			p.section = start
			return p.fail(errs.New(errs.ErrCodeInvalidFormat, "expected ville(NAME)., route(NAME,NAME). or recharge(NAME). in order"))
		}
		p.section++
	}
}

func (p *parser) addCity(name string) error {
	key := strings.ToLower(name)
	if prev, ok := p.firstLine[key]; ok {
		return p.fail(errs.New(errs.ErrCodeDuplicateCity, "city %s already declared on line %d", name, prev))
	}
	p.firstLine[key] = p.line
	p.names = append(p.names, name)
	return nil
}

// build creates the community once the city section is over.
func (p *parser) build() error {
	if p.uc != nil {
		return nil
	}
	uc, err := community.FromNames(p.names...)
	if err != nil {
		return p.fail(err)
	}
	p.uc = uc
	return nil
}

func (p *parser) fail(err error) error {
	return errs.Wrap(errs.ErrCodeInvalidConfig, &ParseError{
		File:    p.file,
		Line:    p.line,
		Section: p.section,
		Text:    p.text,
		Err:     err,
	}, "invalid configuration")
}
