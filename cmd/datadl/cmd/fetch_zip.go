package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var (
	partName   string
	flattenDir bool
)

var fetchZipCmd = &cobra.Command{
	Use:   "fetch-zip <url> <dataset>",
	Short: "Download a ZIP archive and unpack it into the dataset directory",
	Long: `Download a ZIP archive and unpack it into the dataset directory.

With --part the archive is unpacked into a part subdirectory, and that
subdirectory alone decides whether the fetch is skipped, so the parts of a
multi-part dataset can be fetched independently. With --flatten a single
top-level wrapper directory inside the archive is collapsed.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		d := newDownloader()
		if err := d.FetchAndExtract(args[0], args[1], partName, flattenDir); err != nil {
			log.Fatalf("fetch-zip: %s", err)
		}
	},
}

func init() {
	fetchZipCmd.Flags().StringVar(&partName, "part", "", "part subdirectory within the dataset")
	fetchZipCmd.Flags().BoolVar(&flattenDir, "flatten", false, "collapse a single wrapper directory after extraction")
	rootCmd.AddCommand(fetchZipCmd)
}
