// Command ndastro prints ayanamsa values and sunrise/sunset times.
package main

import (
	"fmt"
	"os"

	"github.com/dhuruvah-apps/ndastro-core/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// calculation failures were already reported by the command
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
