package activity

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/missionctl/missionctl/cmd/cli/output"
	"github.com/missionctl/missionctl/cmd/cli/root"
)

// Init registers the activity command tree.
func Init(rootCmd *cobra.Command) {
	activityCmd := &cobra.Command{
		Use:   "activity",
		Short: "Inspect the agent activity feed",
	}
	activityCmd.AddCommand(listCmd(), statsCmd())
	rootCmd.AddCommand(activityCmd)
}

func listCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent activity entries",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := http.Get(root.APIBase() + "/activity?filter=" + url.QueryEscape(filter))
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var out struct {
				Count int `json:"count"`
				Items []struct {
					TimeLabel string `json:"timeLabel"`
					Type      string `json:"type"`
					Content   string `json:"content"`
				} `json:"items"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				fmt.Println("Bad response:", err)
				return
			}

			if out.Count == 0 {
				fmt.Println("No activity to show")
				return
			}
			rows := make([][]interface{}, 0, len(out.Items))
			for _, it := range out.Items {
				rows = append(rows, []interface{}{it.TimeLabel, it.Type, truncate(it.Content, 80)})
			}
			output.RenderTable([]string{"When", "Type", "Content"}, rows)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "filter by type (all|tool|message|cron)")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show activity counts by type",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := http.Get(root.APIBase() + "/activity/stats")
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var out struct {
				Total    int `json:"total"`
				Tool     int `json:"tool"`
				Messages int `json:"messages"`
				Cron     int `json:"cron"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				fmt.Println("Bad response:", err)
				return
			}
			output.RenderTable(
				[]string{"Total", "Tool calls", "Messages", "Cron"},
				[][]interface{}{{out.Total, out.Tool, out.Messages, out.Cron}},
			)
		},
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
