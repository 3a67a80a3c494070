package search

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/missionctl/missionctl/cmd/cli/output"
	"github.com/missionctl/missionctl/cmd/cli/root"
)

// Init registers the search command.
func Init(rootCmd *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search memory and session content",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			query := strings.Join(args, " ")
			resp, err := http.Get(root.APIBase() + "/search?q=" + url.QueryEscape(query))
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var out struct {
				State   string `json:"state"`
				Total   int    `json:"total"`
				Results []struct {
					File    string `json:"file"`
					Type    string `json:"type"`
					Snippet string `json:"snippet"`
				} `json:"results"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				fmt.Println("Bad response:", err)
				return
			}

			if out.State != "ok" {
				fmt.Printf("No results for %q\n", query)
				return
			}

			fmt.Printf("%d result(s)\n", out.Total)
			rows := make([][]interface{}, 0, len(out.Results))
			for _, r := range out.Results {
				rows = append(rows, []interface{}{r.File, r.Type, plainSnippet(r.Snippet)})
			}
			output.RenderTable([]string{"File", "Type", "Snippet"}, rows)
		},
	}

	rootCmd.AddCommand(cmd)
}

// plainSnippet strips the HTML highlighting the API adds for browsers.
func plainSnippet(s string) string {
	s = strings.ReplaceAll(s, "<mark>", "")
	s = strings.ReplaceAll(s, "</mark>", "")
	return html.UnescapeString(s)
}
