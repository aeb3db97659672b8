// main - main entry-point to the pacs008 commands through cobra
// individual commands are outlined in ./cmd/
package main

import (
	"github.com/pixpay/pacs008-client/cmd"
	"github.com/pixpay/pacs008-client/libs/logging"
)

var (
	// variables will be overwritten at build time
	version   string
	commit    string
	buildTime string
)

func main() {
	defer func() {
		if logging.Writer != nil {
			logging.Writer.Close()
		}
	}()
	cmd.Execute(version, commit, buildTime)
}
