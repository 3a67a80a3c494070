package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the missionctl command tree root.
var RootCmd = &cobra.Command{
	Use:   "missionctl",
	Short: "Mission Control CLI",
	Long:  "Command line interface for the Mission Control agent dashboard API",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// GetRoot returns the root command for subcommand registration.
func GetRoot() *cobra.Command {
	return RootCmd
}

// APIBase returns the API base URL, overridable via MISSIONCTL_API_URL.
func APIBase() string {
	if v := os.Getenv("MISSIONCTL_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}
