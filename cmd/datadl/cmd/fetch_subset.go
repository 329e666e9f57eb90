package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var subsetPatterns []string

var fetchSubsetCmd = &cobra.Command{
	Use:   "fetch-subset <url> <dataset>",
	Short: "Download a ZIP archive and keep only the files matching glob patterns",
	Long: `Download a ZIP archive, extract it to a throwaway staging directory and
move only the files matching the given glob patterns into the dataset
directory. Everything else is discarded, which keeps large downloads from
filling the data directory with files the pipeline never reads.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(subsetPatterns) == 0 {
			log.Fatalf("fetch-subset: at least one --pattern is required")
		}

		d := newDownloader()
		if err := d.FetchExtractSubset(args[0], subsetPatterns, args[1]); err != nil {
			log.Fatalf("fetch-subset: %s", err)
		}
	},
}

func init() {
	fetchSubsetCmd.Flags().StringArrayVarP(&subsetPatterns, "pattern", "p", nil,
		"glob pattern to keep (repeatable, e.g. -p '*.csv' -p 'shp/*.shp')")
	rootCmd.AddCommand(fetchSubsetCmd)
}
