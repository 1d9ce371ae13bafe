package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/MassBabyGeek/advent-leaderboard/internal/database"
	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <year>",
	Short: "Show the latest archived snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	if application.Repository == nil {
		return errors.New("snapshot archive disabled: set DB_HOST")
	}

	archived, err := application.Repository.Latest(cmd.Context(), year)
	if errors.Is(err, database.ErrSnapshotNotFound) {
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "no archived snapshot for %d\n", year)
		return nil
	}
	if err != nil {
		return err
	}

	printArchived(cmd.OutOrStdout(), archived)
	return nil
}

func printArchived(w io.Writer, a *model.ArchivedSnapshot) {
	fmt.Fprintf(w, "id:         %s\n", a.ID)
	fmt.Fprintf(w, "year:       %d\n", a.Year)
	fmt.Fprintf(w, "board:      %d\n", a.BoardID)
	fmt.Fprintf(w, "fetched at: %s\n", a.FetchedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "members:    %d\n", a.MemberCount)
	fmt.Fprintf(w, "archived:   %s\n", a.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
}
