package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	api "github.com/thecooltechguy/finc-smash-leaderboard/internal/http"
	"github.com/thecooltechguy/finc-smash-leaderboard/internal/stats"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

func getJSON(path string, target any) error {
	resp, err := httpClient.Get(host + path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("received non-OK HTTP status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the service is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := httpClient.Get(host + "/health")
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			fmt.Println(string(body))
			return nil
		},
	}
}

func leaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the current tiered leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var lb api.LeaderboardResponse
			if err := getJSON("/api/leaderboard", &lb); err != nil {
				return err
			}

			if lb.Status.Error != "" {
				fmt.Fprintf(os.Stderr, "warning: %s\n", lb.Status.Error)
			}
			if len(lb.Ranked) == 0 {
				fmt.Println("No players on the leaderboard yet.")
				return nil
			}

			renderPlayerTable(lb.Ranked)
			fmt.Printf("\nThresholds: S>=%d A>=%d B>=%d C>=%d D>=%d\n",
				lb.Thresholds.S, lb.Thresholds.A, lb.Thresholds.B, lb.Thresholds.C, lb.Thresholds.D)
			fmt.Printf("Last updated: %s\n", lb.Status.LastUpdated.Local().Format(time.RFC1123))
			return nil
		},
	}
}

func playersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Show the ranked player list",
		RunE: func(cmd *cobra.Command, args []string) error {
			var ranked []stats.DerivedPlayer
			if err := getJSON("/api/players", &ranked); err != nil {
				return err
			}
			if len(ranked) == 0 {
				fmt.Println("No players on the leaderboard yet.")
				return nil
			}
			renderPlayerTable(ranked)
			return nil
		},
	}
}

func matchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "Show recent matches, winners first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var mr api.MatchesResponse
			if err := getJSON("/api/matches", &mr); err != nil {
				return err
			}
			if len(mr.Matches) == 0 {
				fmt.Println("No matches recorded yet.")
				return nil
			}

			table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
				Row: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			}))
			table.Header("Match", "Played", "Winners", "Losers")
			for _, m := range mr.Matches {
				var winners, losers string
				for _, p := range m.Participants {
					if p.HasWon {
						winners = appendName(winners, p.ShownName())
					} else {
						losers = appendName(losers, p.ShownName())
					}
				}
				table.Append(m.ID, m.CreatedAt.Local().Format("2006-01-02 15:04"), winners, losers)
			}
			table.Render()
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the refresh status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var st api.StatusResponse
			if err := getJSON("/api/status", &st); err != nil {
				return err
			}
			fmt.Printf("last updated: %s\n", st.LastUpdated.Local().Format(time.RFC1123))
			fmt.Printf("loading: %t, refreshing: %t\n", st.Loading, st.Refreshing)
			fmt.Printf("next refresh in: %ds\n", st.Countdown)
			if st.Error != "" {
				fmt.Printf("error: %s\n", st.Error)
			}
			return nil
		},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trigger an immediate refresh cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := httpClient.Get(host + "/refresh")
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("refresh failed: %s", string(body))
			}
			fmt.Print(string(body))
			return nil
		},
	}
}

func renderPlayerTable(ranked []stats.DerivedPlayer) {
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
	}))
	table.Header("Rank", "Tier", "Player", "ELO", "Matches", "Win Rate", "K/D")
	for _, p := range ranked {
		table.Append(
			strconv.Itoa(p.Rank),
			string(p.Tier),
			p.ShownName(),
			strconv.Itoa(p.Elo),
			strconv.Itoa(p.Matches),
			stats.FormatWinRate(p.WinRate),
			stats.FormatKD(p.KDRatio),
		)
	}
	table.Render()
}

func appendName(list, name string) string {
	if list == "" {
		return name
	}
	return list + ", " + name
}
