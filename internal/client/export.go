package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fadilmartias/intern-coach/internal/dto"
	"github.com/fadilmartias/intern-coach/internal/model"
	"github.com/tidwall/gjson"
)

var csvHeader = []string{"Company", "Role", "Platform", "Location", "Status", "Deadline", "Notes", "Created At"}

// MarshalCSV renders the collection with the fixed column order. Every field
// is quoted, inner quotes doubled, matching the historical export format.
func MarshalCSV(internships []model.Internship) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	for _, rec := range internships {
		createdAt := rec.CreatedAt
		if createdAt == "" {
			createdAt = time.Now().UTC().Format(time.RFC3339)
		}
		fields := []string{
			rec.Company,
			rec.Role,
			rec.Platform,
			rec.Location,
			string(rec.Status),
			rec.Deadline,
			rec.Notes,
			createdAt,
		}
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		b.WriteString("\n" + strings.Join(quoted, ","))
	}
	return []byte(b.String())
}

// MarshalJSON renders the collection as a pretty-printed array of the raw
// records.
func MarshalJSON(internships []model.Internship) ([]byte, error) {
	return json.MarshalIndent(internships, "", "  ")
}

// ParseImport turns an exported JSON file back into create inputs. Only a
// top-level array is accepted; ids and timestamps are dropped because the
// server reassigns them.
func ParseImport(data []byte) ([]dto.CreateInternshipInput, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("import file is not valid JSON")
	}
	if !gjson.ParseBytes(data).IsArray() {
		return nil, errors.New("import file must contain a JSON array")
	}

	var internships []model.Internship
	if err := json.Unmarshal(data, &internships); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}

	inputs := make([]dto.CreateInternshipInput, 0, len(internships))
	for _, rec := range internships {
		inputs = append(inputs, dto.CreateInternshipInput{
			Company:  rec.Company,
			Role:     rec.Role,
			Platform: rec.Platform,
			Location: rec.Location,
			Status:   string(rec.Status),
			Deadline: rec.Deadline,
			Notes:    rec.Notes,
		})
	}
	return inputs, nil
}

// ExportCSV fetches the collection and writes it to path as CSV.
func (c *Client) ExportCSV(ctx context.Context, path string) error {
	internships, err := c.List(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, MarshalCSV(internships), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// ExportJSON fetches the collection and writes it to path as JSON.
func (c *Client) ExportJSON(ctx context.Context, path string) error {
	internships, err := c.List(ctx)
	if err != nil {
		return err
	}
	data, err := MarshalJSON(internships)
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// ImportFile reads an exported JSON array from path, clears the store and
// recreates every record in sequence. Returns the number imported.
func (c *Client) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read import file: %w", err)
	}
	inputs, err := ParseImport(data)
	if err != nil {
		return 0, err
	}

	if err := c.Clear(ctx); err != nil {
		return 0, err
	}
	for i, in := range inputs {
		if _, err := c.Create(ctx, in); err != nil {
			return i, fmt.Errorf("import record %d: %w", i+1, err)
		}
	}
	return len(inputs), nil
}
