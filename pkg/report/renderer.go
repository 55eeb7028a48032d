package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
)

const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

var Formats = []string{FormatTable, FormatCSV, FormatJSON}

type Renderer interface {
	Render(writer io.Writer, datasets ...Dataset) error
}

func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatTable:
		return &tableRenderer{}, nil
	case FormatCSV:
		return &csvRenderer{}, nil
	case FormatJSON:
		return &jsonRenderer{}, nil
	}
	return nil, fmt.Errorf("%v is not a valid format, allowed values are %v", format, Formats)
}

type tableRenderer struct{}

func (renderer *tableRenderer) Render(writer io.Writer, datasets ...Dataset) error {
	for i, dataset := range datasets {
		if i > 0 {
			fmt.Fprintln(writer)
		}
		fmt.Fprintln(writer, dataset.Title)
		fmt.Fprintln(writer, strings.Repeat("=", len(dataset.Title)))

		tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(dataset.Columns, "\t"))
		fmt.Fprintln(tw, strings.Join(lo.Map(dataset.Columns, func(column string, _ int) string {
			return strings.Repeat("-", len(column))
		}), "\t"))
		for row := range dataset.Rows() {
			fmt.Fprintln(tw, strings.Join(dataset.Row(row), "\t"))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("cannot write table \"%v\": %w", dataset.Title, err)
		}
	}
	return nil
}

// Datasets are written one after another, each one preceded by its header
type csvRenderer struct{}

func (renderer *csvRenderer) Render(writer io.Writer, datasets ...Dataset) error {
	csvWriter := csv.NewWriter(writer)
	for i, dataset := range datasets {
		if i > 0 {
			if err := csvWriter.Write([]string{}); err != nil {
				return fmt.Errorf("cannot write CSV separator: %w", err)
			}
		}
		if err := csvWriter.Write(dataset.Columns); err != nil {
			return fmt.Errorf("cannot write CSV header of \"%v\": %w", dataset.Title, err)
		}
		for row := range dataset.Rows() {
			if err := csvWriter.Write(dataset.Row(row)); err != nil {
				return fmt.Errorf("cannot write CSV record of \"%v\": %w", dataset.Title, err)
			}
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

type jsonRenderer struct{}

type jsonDataset struct {
	Title   string              `json:"title"`
	Columns []string            `json:"columns"`
	Values  map[string][]string `json:"values"`
}

func (renderer *jsonRenderer) Render(writer io.Writer, datasets ...Dataset) error {
	output := lo.Map(datasets, func(dataset Dataset, _ int) jsonDataset {
		return jsonDataset{Title: dataset.Title, Columns: dataset.Columns, Values: dataset.Values}
	})

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}
	return nil
}
