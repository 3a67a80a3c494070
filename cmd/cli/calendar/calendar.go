package calendar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/missionctl/missionctl/cmd/cli/output"
	"github.com/missionctl/missionctl/cmd/cli/root"
)

// Init registers the calendar command.
func Init(rootCmd *cobra.Command) {
	var start string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the weekly job calendar",
		Run: func(cmd *cobra.Command, args []string) {
			path := root.APIBase() + "/calendar/week"
			if start != "" {
				path += "?start=" + url.QueryEscape(start)
			}
			resp, err := http.Get(path)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var cal struct {
				Title string `json:"title"`
				Days  []struct {
					Label   string `json:"label"`
					IsToday bool   `json:"isToday"`
					Events  []struct {
						Name      string `json:"name"`
						Time      string `json:"time"`
						Recurring bool   `json:"recurring"`
					} `json:"events"`
				} `json:"days"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&cal); err != nil {
				fmt.Println("Bad response:", err)
				return
			}

			fmt.Println(cal.Title)
			rows := make([][]interface{}, 0, len(cal.Days))
			for _, d := range cal.Days {
				label := d.Label
				if d.IsToday {
					label += " *"
				}
				events := ""
				for _, e := range d.Events {
					if events != "" {
						events += "\n"
					}
					events += e.Time + " " + e.Name
					if e.Recurring {
						events += " (recurring)"
					}
				}
				rows = append(rows, []interface{}{label, events})
			}
			output.RenderTable([]string{"Day", "Jobs"}, rows)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "week to show (YYYY-MM-DD, any day in the week)")
	rootCmd.AddCommand(cmd)
}
