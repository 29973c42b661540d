// Command huffpack compresses and decompresses files with the huffpack
// Huffman codec and reports compression statistics.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the result to `FILE` instead of deriving a name",
	}
	quietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "suppress the statistics report",
	}
)

var app = &cli.App{
	Name:  "huffpack",
	Usage: "lossless Huffman compression of files",
	Commands: []*cli.Command{
		{
			Name:      "compress",
			Aliases:   []string{"c"},
			Usage:     "compress a file into a .hfpk archive",
			ArgsUsage: "<file>",
			Flags:     []cli.Flag{outputFlag, quietFlag},
			Action:    runCompress,
		},
		{
			Name:      "decompress",
			Aliases:   []string{"d"},
			Usage:     "restore the original file from a .hfpk archive",
			ArgsUsage: "<archive>",
			Flags:     []cli.Flag{outputFlag},
			Action:    runDecompress,
		},
		{
			Name:      "inspect",
			Aliases:   []string{"i"},
			Usage:     "show the code table and statistics a file would compress with",
			ArgsUsage: "<file>",
			Action:    runInspect,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
