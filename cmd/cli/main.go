package main

import (
	"fmt"
	"os"

	"github.com/missionctl/missionctl/cmd/cli/activity"
	"github.com/missionctl/missionctl/cmd/cli/calendar"
	"github.com/missionctl/missionctl/cmd/cli/jobs"
	"github.com/missionctl/missionctl/cmd/cli/root"
	"github.com/missionctl/missionctl/cmd/cli/search"
)

func main() {
	rootCmd := root.GetRoot()
	activity.Init(rootCmd)
	jobs.Init(rootCmd)
	calendar.Init(rootCmd)
	search.Init(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
