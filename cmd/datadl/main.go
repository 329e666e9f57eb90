package main

import "github.com/open-AIMS/data-downloader/cmd/datadl/cmd"

func main() {
	cmd.Execute()
}
