package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/mitchellh/go-homedir"
	"github.com/open-AIMS/data-downloader/pkg/clog"
	"github.com/open-AIMS/data-downloader/pkg/config"
	"github.com/open-AIMS/data-downloader/pkg/datadl"
	"github.com/open-AIMS/data-downloader/pkg/fetch"
	"github.com/spf13/cobra"
)

var dataDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "datadl",
	Short: "Download datasets into a predictable on-disk layout",
	Long: `Download datasets into a predictable on-disk layout.

Each dataset is placed in its own directory under the data directory and
every command is idempotent: a target that already exists is skipped, so
acquisition scripts can be re-run without re-fetching completed work.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "",
		"base directory for datasets (default $DATADL_DIR or ./data-cache)")
}

func initConfig() {
	if err := config.LoadFromDatadlDotenv(); err != nil {
		log.Fatalf("Unable to load %s: %s", config.DotenvFile, err)
	}

	clog.Setup(os.Stderr, config.GetKeyWithDefault(config.LogLevelKey, "info"))
}

func newDownloader() *datadl.Downloader {
	root := dataDir
	if root == "" {
		root = config.GetKeyWithDefault(config.DataDirKey, "data-cache")
	}

	root, err := homedir.Expand(root)
	if err != nil {
		log.Fatalf("Bad data directory: %s", err)
	}

	return datadl.New(root, fetch.NewHTTPFetcher())
}
