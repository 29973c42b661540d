package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/chronos-tachyon/huffpack"
)

const archiveExt = ".hfpk"

func runCompress(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("compress expects exactly one input file", 1)
	}
	inPath := ctx.Args().First()

	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	result, err := huffpack.Compress(data)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", inPath, err)
	}

	outPath := ctx.String(outputFlag.Name)
	if outPath == "" {
		outPath = inPath + archiveExt
	}
	if err := os.WriteFile(outPath, huffpack.EncodeArchive(result), 0o644); err != nil {
		return err
	}

	if !ctx.Bool(quietFlag.Name) {
		renderStats(result.Stats)
	}
	color.Green("wrote %s %s", outPath, result.Stats)
	return nil
}

func runDecompress(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("decompress expects exactly one archive", 1)
	}
	inPath := ctx.Args().First()

	blob, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	result, err := huffpack.DecodeArchive(blob)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	data, err := huffpack.Decompress(result.Payload, result.Tree)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	if uint64(len(data)) != result.Stats.OriginalSymbols {
		return fmt.Errorf("decoding %s: archive declares %d symbols but payload decodes to %d",
			inPath, result.Stats.OriginalSymbols, len(data))
	}

	outPath := ctx.String(outputFlag.Name)
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, archiveExt)
		if outPath == inPath {
			outPath = inPath + ".out"
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}

	color.Green("restored %s (%d bytes)", outPath, len(data))
	return nil
}

func runInspect(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("inspect expects exactly one input file", 1)
	}
	inPath := ctx.Args().First()

	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	result, err := huffpack.Compress(data)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", inPath, err)
	}

	restored, err := huffpack.Decompress(result.Payload, result.Tree)
	if err != nil {
		return fmt.Errorf("round trip failed: %w", err)
	}
	if !huffpack.VerifyRoundTrip(data, restored) {
		return fmt.Errorf("round trip produced different bytes for %s", inPath)
	}

	renderCodeTable(data)
	renderStats(result.Stats)
	color.Green("round trip verified (%d bytes)", len(data))
	return nil
}
