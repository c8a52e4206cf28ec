package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cineworld/config"
)

func newGenresCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List selectable genres",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			genres := svc.Genres()
			if asJSON {
				return writeJSON(cmd, genres)
			}
			rows := make([][]string, 0, len(genres))
			for _, g := range genres {
				rows = append(rows, []string{strconv.Itoa(g.ID), g.Icon + " " + g.Name, g.Description})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"ID", "Genre", "Description"}, rows, []columnAlignment{alignRight}, shouldColorize(out)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newCountriesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List selectable countries",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			countries := svc.Countries()
			if asJSON {
				return writeJSON(cmd, countries)
			}
			rows := make([][]string, 0, len(countries))
			for _, c := range countries {
				rows = append(rows, []string{c.Code, c.Flag + " " + c.Name, strconv.Itoa(len(svc.CountryMovies(c.Code)))})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Code", "Country", "Sample titles"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}, shouldColorize(out)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration helpers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Print an annotated sample configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.SampleConfig())
			return nil
		},
	})
	return cmd
}
