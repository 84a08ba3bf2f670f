package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableSpec describes one rendered table. rightAligned lists 1-based
// column numbers that hold numeric data.
type tableSpec struct {
	title        string
	headers      []string
	rows         [][]string
	rightAligned []int
}

func (s tableSpec) render() string {
	if len(s.headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if s.title != "" {
		tw.SetTitle(s.title)
	}

	header := make(table.Row, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range s.rows {
		r := make(table.Row, len(s.headers))
		for i := range s.headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	right := make(map[int]bool, len(s.rightAligned))
	for _, col := range s.rightAligned {
		right[col] = true
	}
	configs := make([]table.ColumnConfig, 0, len(s.headers))
	for i := range s.headers {
		align := text.AlignLeft
		if right[i+1] {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
