package jobs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/missionctl/missionctl/cmd/cli/output"
	"github.com/missionctl/missionctl/cmd/cli/root"
)

// Init registers the jobs command tree.
func Init(rootCmd *cobra.Command) {
	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect scheduled jobs",
	}
	jobsCmd.AddCommand(listCmd(), showCmd())
	rootCmd.AddCommand(jobsCmd)
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scheduled jobs",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := http.Get(root.APIBase() + "/jobs")
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var out struct {
				Items []struct {
					ID       string `json:"id"`
					Name     string `json:"name"`
					Schedule string `json:"schedule"`
					Status   string `json:"status"`
					NextRun  string `json:"nextRun"`
				} `json:"items"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				fmt.Println("Bad response:", err)
				return
			}

			rows := make([][]interface{}, 0, len(out.Items))
			for _, j := range out.Items {
				rows = append(rows, []interface{}{j.ID, j.Name, j.Schedule, j.NextRun, j.Status})
			}
			output.RenderTable([]string{"ID", "Name", "Schedule", "Next run", "Status"}, rows)
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one job in detail",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := http.Get(root.APIBase() + "/jobs/" + url.PathEscape(args[0]))
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusNotFound {
				fmt.Println("Job not found")
				return
			}

			var job struct {
				Name        string `json:"name"`
				Schedule    string `json:"schedule"`
				Description string `json:"description"`
				NextRun     string `json:"nextRun"`
				LastRun     string `json:"lastRun"`
				Handler     *struct {
					Label string `json:"label"`
					Full  string `json:"full"`
				} `json:"handler"`
				Script string `json:"script"`
				Status string `json:"status"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
				fmt.Println("Bad response:", err)
				return
			}

			fmt.Println(job.Name)
			fmt.Println("  Schedule:    ", job.Schedule)
			fmt.Println("  Description: ", job.Description)
			fmt.Println("  Next run:    ", job.NextRun)
			if job.LastRun != "" {
				fmt.Println("  Last run:    ", job.LastRun)
			}
			if job.Handler != nil {
				fmt.Printf("  Handler:      %s (%s)\n", job.Handler.Label, job.Handler.Full)
			}
			fmt.Println("  Status:      ", job.Status)
			if job.Script != "" {
				fmt.Println("  Script:")
				fmt.Println(job.Script)
			}
		},
	}
}
