package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/format"
	"github.com/ratulalahy/med-debt-collector/internal/report"
)

var exportTables = []string{"summary", "patients", "campaigns", "queue", "calls"}

func tablesFor(c collections, now time.Time) map[string]report.Table {
	return map[string]report.Table{
		"summary":   report.SummaryTable(c.dashboard, now),
		"patients":  report.PatientTable(c.patients),
		"campaigns": report.CampaignTable(c.campaigns),
		"queue":     report.QueueTable(c.queue),
		"calls":     report.CallLogTable(c.logs),
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var out, kind, table string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records as an xlsx workbook or a csv table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if kind == "" {
				kind = format.FileExtension(out)
			}
			if kind == "" && (out == "-" || out == "") {
				kind = "csv"
			}
			if kind != "xlsx" && kind != "csv" {
				return fmt.Errorf("unsupported export format %q, want xlsx or csv", kind)
			}

			ctx := cmd.Context()
			src, err := c.app.source(ctx)
			if err != nil {
				return err
			}
			records, err := loadAll(ctx, src)
			if err != nil {
				return err
			}
			tables := tablesFor(records, time.Now())

			w, done, err := openOutput(out, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if kind == "xlsx" {
				sheets := make([]report.Table, 0, len(exportTables))
				for _, name := range exportTables {
					sheets = append(sheets, tables[name])
				}
				err = report.WriteXLSX(w, sheets...)
			} else {
				t, ok := tables[table]
				if !ok {
					err = fmt.Errorf("unknown table %q, want one of %s", table, strings.Join(exportTables, ", "))
				} else {
					err = report.WriteCSV(w, t)
				}
			}
			if cerr := done(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			c.app.logger.Info("Export written", zap.String("out", out), zap.String("format", kind))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&kind, "format", "", "xlsx or csv (default from the --out extension, csv on stdout)")
	cmd.Flags().StringVar(&table, "table", "patients", "table written by csv exports")
	return cmd
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" || path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}
