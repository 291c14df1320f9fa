// Package main provides the command-line interface for domextras.
// It reads HTML from a file or standard input, runs one extraction mode
// against it, and writes the results as JSON or plain text.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mrjoshuak/domextras"
	"github.com/mrjoshuak/domextras/internal/textutil"
)

// ExtractionMode selects what the CLI pulls out of the document.
type ExtractionMode string

const (
	ModeLinks      ExtractionMode = "links"
	ModeImages     ExtractionMode = "images"
	ModeFirstImage ExtractionMode = "first-image"
	ModeAttributes ExtractionMode = "attributes"
	ModeTables     ExtractionMode = "tables"
)

func main() {
	inputFile := flag.String("input", "-", "Input HTML file path (use '-' for stdin)")
	outputFile := flag.String("output", "", "Output file path (default: stdout)")
	modeStr := flag.String("mode", "links", "Extraction mode: links, images, first-image, attributes, or tables")
	xpathExpr := flag.String("xpath", "", "XPath expression (required for attributes mode, optional override otherwise)")
	limitStr := flag.String("limit", "", "Maximum number of results")
	errorsStr := flag.String("errors", "raise", "Error policy: raise or ignore")
	formatStr := flag.String("format", "json", "Output format: json or text")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "domextras - Extract links, images and attributes from HTML\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -input page.html\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input page.html -mode images -limit 5 -format text\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -input page.html -mode attributes -xpath '//section/@id'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  cat page.html | %s -mode tables > tables.json\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("%s version %s\n", domextras.Name, domextras.Version)
		os.Exit(0)
	}

	mode := ExtractionMode(strings.ToLower(*modeStr))
	switch mode {
	case ModeLinks, ModeImages, ModeFirstImage, ModeAttributes, ModeTables:
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode: %s. Must be one of: links, images, first-image, attributes, tables\n", *modeStr)
		os.Exit(1)
	}

	if *formatStr != "json" && *formatStr != "text" {
		fmt.Fprintf(os.Stderr, "Invalid output format: %s. Must be json or text\n", *formatStr)
		os.Exit(1)
	}

	onError, err := domextras.ParseOnError(*errorsStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid error policy: %s. Must be raise or ignore\n", *errorsStr)
		os.Exit(1)
	}

	opts := []domextras.Option{domextras.WithOnError(onError)}
	if *limitStr != "" {
		if !textutil.IsNumeric(*limitStr) {
			fmt.Fprintf(os.Stderr, "Invalid limit: %s\n", *limitStr)
			os.Exit(1)
		}
		f, _ := strconv.ParseFloat(strings.TrimSpace(*limitStr), 64)
		opts = append(opts, domextras.WithLimit(int(f)))
	}
	if *xpathExpr != "" {
		opts = append(opts, domextras.WithXPath(*xpathExpr))
	}

	var input io.Reader = os.Stdin
	if *inputFile != "-" {
		file, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file %s: %v\n", *inputFile, err)
			os.Exit(1)
		}
		defer file.Close()
		input = file
	}

	doc, err := domextras.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	var result any
	switch mode {
	case ModeLinks:
		result, err = domextras.ExtractLinks(doc, opts...)
	case ModeImages:
		result, err = domextras.ExtractImages(doc, opts...)
	case ModeFirstImage:
		result, err = domextras.ExtractFirstImage(doc, opts...)
	case ModeAttributes:
		if *xpathExpr == "" {
			fmt.Fprintf(os.Stderr, "The attributes mode requires -xpath\n")
			os.Exit(1)
		}
		result, err = domextras.ExtractAttributes(doc, *xpathExpr, opts...)
	case ModeTables:
		result, err = domextras.ExtractTables(doc, opts...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		os.Exit(1)
	}

	output := os.Stdout
	if *outputFile != "" {
		output, err = os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		defer output.Close()
	}

	if err := writeResult(output, result, *formatStr); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func writeResult(w io.Writer, result any, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	switch v := result.(type) {
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case []string:
		for _, line := range v {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		// Tables have no obvious flat text form.
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
