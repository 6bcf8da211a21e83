package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// renderDigest assembles the exportable document: directory structure,
// aggregate summary, then every file body under a labeled divider. Record
// bodies arrive already escaped; they are embedded as-is.
func renderDigest(result ScanResult) string {
	var b strings.Builder

	b.WriteString("Directory structure:\n")
	b.WriteString(result.Structure)
	if !strings.HasSuffix(result.Structure, "\n") {
		b.WriteString("\n")
	}

	b.WriteString("\n--- Summary ---\n")
	b.WriteString(fmt.Sprintf("Files: %s\n", FormatNumber(result.Summary.FileCount)))
	b.WriteString(fmt.Sprintf("Total size: %s\n", FormatSize(result.Summary.TotalSize)))
	b.WriteString(fmt.Sprintf("Estimated tokens: %s\n", FormatNumber(result.Summary.EstimatedTokens)))

	for _, record := range result.Contents {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("File: %s\n", record.Path))
		b.WriteString(strings.Repeat("=", 50))
		b.WriteString("\n")
		b.WriteString(record.Content)
		if !strings.HasSuffix(record.Content, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// writeOutput routes the digest to a file, the clipboard, or stdout.
func writeOutput(digest string) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(digest), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		fmt.Fprintf(os.Stderr, "Output saved to %s\n", outputFile)
		return nil
	}
	if copyToClipboard {
		if err := clipboard.WriteAll(digest); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to clipboard: %v\n", err)
			fmt.Println(digest)
			return nil
		}
		fmt.Fprintln(os.Stderr, "Output copied to clipboard.")
		return nil
	}
	fmt.Println(digest)
	return nil
}
