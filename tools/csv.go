package tools

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iportilla/agents/llm"
)

// SummarizeCSV loads a CSV file and reports per-column statistics:
// count, mean, min, and max for numeric columns, count only for the
// rest. Paths are resolved inside a fixed root directory so the model
// cannot read outside it.
type SummarizeCSV struct {
	root string
}

// NewSummarizeCSV creates the tool rooted at dir.
func NewSummarizeCSV(dir string) *SummarizeCSV {
	return &SummarizeCSV{root: dir}
}

type summarizeArgs struct {
	Path string `json:"path"`
}

func (*SummarizeCSV) Name() string { return "summarize_csv" }

func (*SummarizeCSV) Describe() llm.ToolSchema {
	return llm.ToolSchema{
		Name:        "summarize_csv",
		Description: "Load a CSV file and return a statistical summary of its columns",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Path to the CSV file, relative to the data directory",
				},
			},
			"required": []string{"path"},
		},
	}
}

func (t *SummarizeCSV) Invoke(_ context.Context, raw json.RawMessage) (string, error) {
	var args summarizeArgs
	if err := DecodeArgs(t.Name(), raw, &args); err != nil {
		return "", err
	}
	if strings.TrimSpace(args.Path) == "" {
		return "", &InvalidArgumentsError{Tool: t.Name(), Reason: "requires a 'path' parameter"}
	}

	path, err := t.resolve(args.Path)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", args.Path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args.Path, err)
	}
	if len(records) < 2 {
		return "", fmt.Errorf("%s has no data rows", args.Path)
	}

	return summarize(records[0], records[1:]), nil
}

// resolve joins the requested path onto the root, rejecting absolute
// paths and anything that climbs out of it.
func (t *SummarizeCSV) resolve(requested string) (string, error) {
	cleaned := filepath.Clean(requested)
	if filepath.IsAbs(cleaned) || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", &InvalidArgumentsError{Tool: t.Name(), Reason: "path is outside the data directory"}
	}
	return filepath.Join(t.root, cleaned), nil
}

type columnStats struct {
	name    string
	count   int
	sum     float64
	min     float64
	max     float64
	numeric bool
}

func summarize(header []string, rows [][]string) string {
	stats := make([]columnStats, len(header))
	for i, name := range header {
		stats[i] = columnStats{name: strings.TrimSpace(name), numeric: true}
	}

	for _, row := range rows {
		for i := range stats {
			if i >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				continue
			}
			stats[i].count++
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				stats[i].numeric = false
				continue
			}
			if stats[i].count == 1 || v < stats[i].min {
				stats[i].min = v
			}
			if stats[i].count == 1 || v > stats[i].max {
				stats[i].max = v
			}
			stats[i].sum += v
		}
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "column\tcount\tmean\tmin\tmax")
	for _, s := range stats {
		if !s.numeric || s.count == 0 {
			fmt.Fprintf(w, "%s\t%d\t-\t-\t-\n", s.name, s.count)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			s.name, s.count,
			FormatNumber(s.sum/float64(s.count)),
			FormatNumber(s.min),
			FormatNumber(s.max))
	}
	w.Flush()
	return strings.TrimRight(sb.String(), "\n")
}
