// neetx - NEET-UG selection list extraction tool
//
// neetx converts the plain-text export of a NEET-UG selection list PDF into
// tabular records and writes them to a spreadsheet, csv, or json file.
package main

import (
	"os"

	"github.com/hrushabhNano/careermantrana-neet-ug-pdf-extraction/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
