package cmd

import (
	"fmt"
	"io"
	"strings"

	model "github.com/MassBabyGeek/advent-leaderboard/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <year>",
	Short: "Print the ranked leaderboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	return printLeaderboard(cmd, args, false)
}

func printLeaderboard(cmd *cobra.Command, args []string, force bool) error {
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	members, board, err := application.Leaderboards.Members(cmd.Context(), year, force)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Leaderboard %d (board %d)", board.Year, board.BoardID)
	if board.ContestOver {
		title += " - final"
	}
	color.New(color.Bold).Fprintln(cmd.OutOrStdout(), title)
	renderTable(cmd.OutOrStdout(), members)
	fmt.Fprintf(cmd.OutOrStdout(), "snapshot: %s\n", board.FetchedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	return nil
}

var (
	goldStar   = color.New(color.FgYellow, color.Bold)
	silverStar = color.New(color.FgBlue)
	noStar     = color.New(color.FgHiBlack)
)

// renderTable une ligne par membre: position, étoiles par jour, temps total et moyen
func renderTable(w io.Writer, members []*model.Member) {
	if len(members) == 0 {
		fmt.Fprintln(w, "No participants yet.")
		return
	}

	for _, m := range members {
		var days strings.Builder
		for _, r := range m.Results {
			switch {
			case r.HasSecond():
				days.WriteString(goldStar.Sprint("*"))
			case r.HasFirst():
				days.WriteString(silverStar.Sprint("*"))
			default:
				days.WriteString(noStar.Sprint("."))
			}
		}

		fmt.Fprintf(w, "%3d) %s %3d  %-12s %-16s %s\n",
			m.Position, days.String(), m.Stars(), m.TotalTimeString(), m.AverageTimeString(), m.Name)
	}
}
