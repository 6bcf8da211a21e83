package main

// FileRecord holds one ingested file's relative path and its body as it
// will appear in the digest: HTML-escaped text on success, or a synthetic
// "Error reading file: ..." message when the read failed.
type FileRecord struct {
	Path    string
	Content string
}

// SummaryInfo aggregates counts over a single scan.
// TotalSize and EstimatedTokens cover successful reads only; FileCount is
// fixed at classification time and includes files that later fail to read.
type SummaryInfo struct {
	FileCount       int
	TotalSize       int64
	EstimatedTokens int
}

// ScanResult is the terminal value of a scan. It is not mutated after
// assembly; every scan allocates a fresh one.
type ScanResult struct {
	Structure string
	Summary   SummaryInfo
	Contents  []FileRecord
}

// fileOutcome is the per-file result produced by a read worker. Outcomes
// are folded into the summary only after the whole batch drains, so totals
// never depend on completion order.
type fileOutcome struct {
	record FileRecord
	size   int64
	tokens int
	failed bool
}
