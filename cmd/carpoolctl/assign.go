package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"carpoolreminders/internal/adapters/sheet"
	"carpoolreminders/internal/delivery/http/views"
	"carpoolreminders/internal/domain"
	"carpoolreminders/internal/services"
)

type assignOptions struct {
	file     string
	capacity int
	asJSON   bool
}

func newAssignCmd() *cobra.Command {
	var opts assignOptions
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Group a local sign-up CSV export into cars",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			return runAssign(cmd.OutOrStdout(), logger, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "sign-up sheet CSV export")
	cmd.Flags().IntVarP(&opts.capacity, "capacity", "n", 0, "maximum number of attendees")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the assignment as JSON")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("capacity")
	return cmd
}

func runAssign(out io.Writer, logger *slog.Logger, opts assignOptions) error {
	if opts.capacity <= 0 {
		return fmt.Errorf("%w: capacity must be a positive integer, got %d", domain.ErrInvalidInput, opts.capacity)
	}
	f, err := os.Open(opts.file)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := sheet.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.file, err)
	}
	participants, err := services.ClassifySheet(s, logger)
	if err != nil {
		return err
	}
	a := services.Assign(participants, opts.capacity)

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}
	return printPage(out, views.Build(a, opts.capacity))
}

func printPage(out io.Writer, page views.Page) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(out, format, args...)
		}
	}
	for _, s := range page.Summary {
		printf("%-15s %d\n", s.Label+":", s.Value)
	}
	for _, sec := range page.Sections {
		printf("\n%s\n", sec.Title)
		for _, g := range sec.Groups {
			indent := "  "
			if g.Heading != "" {
				printf("  %s\n", g.Heading)
				indent = "    "
			}
			if len(g.Items) == 0 {
				printf("%s(%s)\n", indent, g.Empty)
			}
			for _, item := range g.Items {
				printf("%s- %s\n", indent, item)
			}
		}
	}
	return err
}
