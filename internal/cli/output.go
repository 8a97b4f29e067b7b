package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v2"

	"github.com/matzehuels/fontify/pkg/pipeline"
	"github.com/matzehuels/fontify/pkg/style"
)

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

// =============================================================================
// Structured Output
// =============================================================================

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// =============================================================================
// Render Results
// =============================================================================

// writeResult prints a pipeline result in the requested format.
func writeResult(w io.Writer, res *pipeline.Result, format string) error {
	switch format {
	case pipeline.FormatJSON:
		return writeJSON(w, res)
	case pipeline.FormatYAML:
		return writeYAML(w, res)
	case pipeline.FormatPlain:
		for _, it := range res.Items {
			fmt.Fprintln(w, it.Output)
		}
		return nil
	case pipeline.FormatTable:
		fmt.Fprintln(w, resultTable(res))
		fmt.Fprintln(w, StyleDim.Render(resultSummary(res)))
		return nil
	}
	return pipeline.ValidateFormat(format)
}

func resultTable(res *pipeline.Result) string {
	rows := make([][]string, len(res.Items))
	for i, it := range res.Items {
		pin := ""
		if it.Pinned {
			pin = iconPin
		}
		rows[i] = []string{pin, it.ID, it.Name, truncate(it.Output, outputWidth)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Style", "Output").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if row < 0 || row >= len(res.Items) {
				return lipgloss.NewStyle()
			}
			it := res.Items[row]
			switch col {
			case 0:
				return stylePin
			case 1:
				return StyleDim
			case 2:
				return readabilityStyle(it.Readability)
			}
			return StyleValue
		}).
		Render()
}

func resultSummary(res *pipeline.Result) string {
	parts := []string{
		fmt.Sprintf("%d of %d styles", res.Stats.Shown, res.Stats.Total),
		string(res.Category),
	}
	if res.Placeholder {
		parts = append(parts, fmt.Sprintf("preview of %q", res.Input))
	}
	return "  " + strings.Join(parts, " · ")
}

// truncate shortens s to at most width terminal columns.
func truncate(s string, width int) string {
	// Table cells are single-line.
	s = strings.ReplaceAll(s, "\n", " ")
	return runewidth.Truncate(s, width, "…")
}

// =============================================================================
// Style Catalog
// =============================================================================

// styleInfo is the serialized form of a catalog entry.
type styleInfo struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Readability style.Readability `json:"readability" yaml:"readability"`
	Categories  []style.Category  `json:"categories" yaml:"categories"`
	Sample      string            `json:"sample" yaml:"sample"`
}

func writeStyles(w io.Writer, styles []style.Style, sample, format string) error {
	infos := make([]styleInfo, len(styles))
	for i, s := range styles {
		infos[i] = styleInfo{
			ID:          s.ID,
			Name:        s.Name,
			Readability: s.Readability,
			Categories:  s.Categories,
			Sample:      s.Apply(sample),
		}
	}

	switch format {
	case pipeline.FormatJSON:
		return writeJSON(w, infos)
	case pipeline.FormatYAML:
		return writeYAML(w, infos)
	case pipeline.FormatPlain:
		for _, s := range infos {
			fmt.Fprintln(w, s.ID)
		}
		return nil
	case pipeline.FormatTable:
		rows := make([][]string, len(infos))
		for i, s := range infos {
			cats := make([]string, len(s.Categories))
			for j, c := range s.Categories {
				cats[j] = string(c)
			}
			rows[i] = []string{strconv.Itoa(i + 1), s.ID, s.Name, string(s.Readability),
				strings.Join(cats, ", "), truncate(s.Sample, 24)}
		}
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("#", "ID", "Name", "Readability", "Categories", "Sample").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == headerRow {
					return styleHeader
				}
				if col == 3 && row >= 0 && row < len(infos) {
					return readabilityStyle(infos[row].Readability)
				}
				if col == 0 || col == 4 {
					return StyleDim
				}
				return StyleValue
			})
		fmt.Fprintln(w, t.Render())
		return nil
	}
	return pipeline.ValidateFormat(format)
}
