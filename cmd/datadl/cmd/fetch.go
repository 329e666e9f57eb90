package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url> <dest>",
	Short: "Download a single file, skipping it if dest already exists",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		d := newDownloader()
		if err := d.FetchFile(args[0], args[1]); err != nil {
			log.Fatalf("fetch: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
