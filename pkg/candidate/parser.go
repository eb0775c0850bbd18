package candidate

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrRosterTooShort is returned when the roster has no data rows under
	// the header.
	ErrRosterTooShort = errors.New("roster must contain a header row and at least one data row")
	// ErrNoValidCandidates is returned when every data row was dropped for
	// missing name or email.
	ErrNoValidCandidates = errors.New("no valid candidates found in roster")
	// ErrUnsupportedFormat is returned for roster files that are neither
	// delimited text nor an xlsx workbook.
	ErrUnsupportedFormat = errors.New("unsupported roster format: only csv, txt and xlsx are allowed")
)

// headerFields maps known header spellings (lowercased, trimmed) to Candidate
// fields. Unrecognized headers are ignored.
var headerFields = map[string]func(*Candidate, string){
	"name":                func(c *Candidate, v string) { c.Name = v },
	"full name":           func(c *Candidate, v string) { c.Name = v },
	"candidate name":      func(c *Candidate, v string) { c.Name = v },
	"email":               func(c *Candidate, v string) { c.Email = v },
	"email address":       func(c *Candidate, v string) { c.Email = v },
	"position":            func(c *Candidate, v string) { c.Position = v },
	"role":                func(c *Candidate, v string) { c.Position = v },
	"job title":           func(c *Candidate, v string) { c.Position = v },
	"experience":          func(c *Candidate, v string) { c.Experience = v },
	"years of experience": func(c *Candidate, v string) { c.Experience = v },
	"skills":              func(c *Candidate, v string) { c.Skills = v },
	"technical skills":    func(c *Candidate, v string) { c.Skills = v },
	"preferred date":      func(c *Candidate, v string) { c.PreferredDate = v },
	"availability":        func(c *Candidate, v string) { c.PreferredDate = v },
	"notes":               func(c *Candidate, v string) { c.Notes = v },
	"comments":            func(c *Candidate, v string) { c.Notes = v },
}

// ParseRoster parses comma-delimited roster text. The first line is the
// header; each following line becomes one Candidate if and only if both name
// and email survive trimming. Rows failing that are dropped without error.
func ParseRoster(text string) ([]Candidate, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, ErrRosterTooShort
	}
	headers := splitCells(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return rowsToCandidates(headers, lines[1:])
}

// ParseRosterFile parses an uploaded roster, dispatching on extension the way
// resume uploads dispatch on pdf/docx.
func ParseRosterFile(filename string, data []byte) ([]Candidate, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return ParseRoster(string(data))
	case ".xlsx":
		return parseWorkbook(data)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func parseWorkbook(data []byte) ([]Candidate, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrRosterTooShort
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrRosterTooShort
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	var lines []string
	for _, row := range rows[1:] {
		lines = append(lines, strings.Join(row, ","))
	}
	return rowsToCandidates(headers, lines)
}

func rowsToCandidates(headers []string, lines []string) ([]Candidate, error) {
	var out []Candidate
	for _, line := range lines {
		values := splitCells(line)
		var c Candidate
		for i, h := range headers {
			set, known := headerFields[h]
			if !known {
				continue
			}
			var v string
			if i < len(values) {
				v = strings.TrimSpace(values[i])
			}
			set(&c, v)
		}
		if c.Name == "" || c.Email == "" {
			continue
		}
		c.ID = fmt.Sprintf("candidate-%d", len(out)+1)
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, ErrNoValidCandidates
	}
	return out, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n"), "\n")
	var lines []string
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func splitCells(line string) []string {
	return strings.Split(line, ",")
}
