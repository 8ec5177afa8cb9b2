package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

// Output formats.
const (
	outputSeries = "series"
	outputTable  = "table"
	outputJSON   = "json"
)

type renderer func(w io.Writer, ranking *domain.Ranking) error

func rendererFor(format string) (renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case outputSeries, "":
		return renderSeries, nil
	case outputTable:
		return renderTable, nil
	case outputJSON:
		return renderJSON, nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q (want series, table or json)",
			domain.ErrInvalidInput, format)
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// renderSeries prints one "country  value" line per score followed by the
// series name. Countries are padded by display width so names with wide
// characters stay aligned.
func renderSeries(w io.Writer, ranking *domain.Ranking) error {
	if len(ranking.Scores) == 0 {
		_, err := fmt.Fprintf(w, "No countries have data for %s.\n", ranking.Year)
		return err
	}

	nameWidth, valueWidth := 0, 0
	values := make([]string, len(ranking.Scores))
	for i, s := range ranking.Scores {
		nameWidth = max(nameWidth, lipgloss.Width(s.Country))
		values[i] = formatScore(s.Value)
		valueWidth = max(valueWidth, len(values[i]))
	}

	var b strings.Builder
	for i, s := range ranking.Scores {
		b.WriteString(s.Country)
		b.WriteString(strings.Repeat(" ", nameWidth-lipgloss.Width(s.Country)+4))
		b.WriteString(strings.Repeat(" ", valueWidth-len(values[i])))
		b.WriteString(values[i])
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Name: %s\n", ranking.Year)

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTable(w io.Writer, ranking *domain.Ranking) error {
	if len(ranking.Scores) == 0 {
		_, err := fmt.Fprintf(w, "No countries have data for %s.\n", ranking.Year)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Country", ranking.Year})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.SetAutoFormatHeaders(false)

	for i, s := range ranking.Scores {
		table.Append([]string{strconv.Itoa(i + 1), s.Country, formatScore(s.Value)})
	}

	table.Render()
	return nil
}

func renderJSON(w io.Writer, ranking *domain.Ranking) error {
	data, err := json.MarshalIndent(ranking, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranking: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
