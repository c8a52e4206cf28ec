package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cineworld/models"
	"cineworld/services/metadata"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var (
		query    string
		genre    string
		country  string
		page     int
		language string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List one page of movies",
		Long: "List one page of movies. --query wins over --country, which wins over --genre; " +
			"with none of them the popular list is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			result := svc.Movies(cmd.Context(), models.FilterRequest{
				Query:       query,
				GenreID:     metadata.ParseGenreParam(genre),
				CountryCode: country,
				Page:        page,
				Language:    language,
			})
			if asJSON {
				return writeJSON(cmd, result)
			}
			if result.Warning != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", result.Warning)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderMovies(result.Movies, shouldColorize(out)))
			fmt.Fprintf(out, "%s · page %d of %d · %d results\n", result.Mode, result.Page, max(result.TotalPages, 1), result.TotalResults)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Free-text title search")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre id (\"all\" or 0 for every genre)")
	cmd.Flags().StringVar(&country, "country", "", "ISO 3166-1 country code")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().StringVar(&language, "language", "", "Response language, e.g. pt-BR")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw result as JSON")
	return cmd
}

func renderMovies(movies []models.MovieSummary, colorize bool) string {
	if len(movies) == 0 {
		return "No movies found."
	}
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rating := "-"
		if m.VoteAverage != nil {
			rating = strconv.FormatFloat(*m.VoteAverage, 'f', 1, 64)
		}
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			m.ReleaseYear(),
			rating,
			m.LanguageName,
			m.ProductionCountry,
		})
	}
	return renderTable(
		[]string{"ID", "Title", "Year", "Rating", "Language", "Country"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
		colorize,
	)
}
