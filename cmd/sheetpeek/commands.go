package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/output"
)

func newHeadersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headers [file]",
		Short: "Print the column names on the header row",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args)
			if err != nil {
				return err
			}

			start := time.Now()
			headers, err := sheetpeek.Headers(s.path, s.opts)
			if err != nil {
				return err
			}
			s.logger.Debug("read headers", "file", s.path, "sheet", headers.Sheet,
				"row", headers.Row, "columns", len(headers.Names), "elapsed", time.Since(start))

			return s.renderer.Headers(headers)
		},
	}
	cmd.Flags().Int("header-row", 0, "1-based row holding the column names (default 1)")
	return cmd
}

func newPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Print the first rows without assuming a header row",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args)
			if err != nil {
				return err
			}

			opts := s.opts
			opts.Count = s.cfg.Preview.Count

			start := time.Now()
			window, err := sheetpeek.Preview(s.path, opts)
			if err != nil {
				return err
			}
			logWindow(s, window.Sheet, len(window.Rows), start)

			return s.renderer.Window(window, output.PreviewTitle)
		},
	}
	cmd.Flags().Int("count", 0, "Number of rows to print; negative prints the whole sheet (default 20)")
	return cmd
}

func newWindowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window [file]",
		Short: "Print a row window after skipping leading rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args)
			if err != nil {
				return err
			}

			opts := s.opts
			opts.Offset = s.cfg.Window.Offset
			opts.Count = s.cfg.Window.Count

			start := time.Now()
			window, err := sheetpeek.Window(s.path, opts)
			if err != nil {
				return err
			}
			logWindow(s, window.Sheet, len(window.Rows), start)

			return s.renderer.Window(window, output.WindowTitle(window))
		},
	}
	cmd.Flags().Int("offset", 0, "Number of leading rows to skip (default 5)")
	cmd.Flags().Int("count", 0, "Number of rows to print (default 10)")
	return cmd
}

func newSheetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [file]",
		Short: "List the sheets of the workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args)
			if err != nil {
				return err
			}

			info, err := sheetpeek.Describe(s.path, s.opts)
			if err != nil {
				return err
			}
			for _, sheet := range info.Sheets {
				if !sheet.Visible {
					s.logger.Debug("hidden sheet", "sheet", sheet.Name)
				}
			}

			return s.renderer.Workbook(info)
		},
	}
}

func logWindow(s *session, sheet string, rows int, start time.Time) {
	s.logger.Debug("read rows", "file", s.path, "sheet", sheet, "rows", rows,
		"engine", s.opts.Engine, "elapsed", time.Since(start))
}
