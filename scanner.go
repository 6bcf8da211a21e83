package main

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// noWorkspaceStructure is the sentinel returned when no root is available.
// It is the only caller-visible failure of a scan; everything else recovers
// per-file.
const noWorkspaceStructure = "No workspace folder open"

// Scanner aggregates a pre-enumerated file list into a ScanResult. Workers
// caps read concurrency (<= 0 means one worker per CPU); Tokenizer defaults
// to the ceil(len/16) heuristic when nil.
type Scanner struct {
	Workers    int
	Classifier Classifier
	Tokenizer  Tokenizer
}

type readJob struct {
	index int
	abs   string
	rel   string
}

// Scan filters discovered paths through the classifier, reads and measures
// the text subset concurrently, and assembles the digest inputs. The tree
// covers every discovered path; size and token totals cover successful
// reads only. Each call allocates fresh state, so overlapping scans never
// share anything.
func (s *Scanner) Scan(rootPath string, discovered []string) ScanResult {
	if rootPath == "" {
		return ScanResult{
			Structure: noWorkspaceStructure,
			Contents:  []FileRecord{},
		}
	}

	tk := s.Tokenizer
	if tk == nil {
		tk = HeuristicTokenizer{}
	}

	relPaths := make([]string, len(discovered))
	for i, p := range discovered {
		relPaths[i] = relativeToRoot(rootPath, p)
	}

	var jobs []readJob
	for i, p := range discovered {
		if s.Classifier.IsTextFile(p) {
			jobs = append(jobs, readJob{
				index: len(jobs),
				abs:   absoluteUnderRoot(rootPath, p),
				rel:   relPaths[i],
			})
		}
	}

	// FileCount is fixed here, before any read completes or fails.
	summary := SummaryInfo{FileCount: len(jobs)}

	outcomes := make([]fileOutcome, len(jobs))
	if len(jobs) > 0 {
		workers := s.Workers
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		if workers > len(jobs) {
			workers = len(jobs)
		}

		jobCh := make(chan readJob)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for job := range jobCh {
					// Each worker writes a disjoint slot, so no
					// further synchronization is needed.
					outcomes[job.index] = readFile(job, tk)
				}
			}()
		}
		for _, job := range jobs {
			jobCh <- job
		}
		close(jobCh)
		wg.Wait()
	}

	// Fold totals after the pool drains: a sum over fixed per-file
	// contributions, independent of completion order.
	contents := make([]FileRecord, len(outcomes))
	for i, o := range outcomes {
		contents[i] = o.record
		if !o.failed {
			summary.TotalSize += o.size
			summary.EstimatedTokens += o.tokens
		}
	}

	structure := rootLabel(rootPath) + "\n" + renderTree(buildTree(relPaths))

	return ScanResult{
		Structure: structure,
		Summary:   summary,
		Contents:  contents,
	}
}

// readFile stats and reads one file. Failures are recovered into the
// record body and excluded from accounting; the batch never aborts.
func readFile(job readJob, tk Tokenizer) fileOutcome {
	outcome := fileOutcome{}
	outcome.record.Path = job.rel

	info, err := os.Stat(job.abs)
	if err != nil {
		outcome.failed = true
		outcome.record.Content = readErrorMessage(err)
		return outcome
	}
	data, err := os.ReadFile(job.abs)
	if err != nil {
		outcome.failed = true
		outcome.record.Content = readErrorMessage(err)
		return outcome
	}

	// Escaped exactly once here; nothing downstream escapes again.
	outcome.record.Content = html.EscapeString(string(data))
	outcome.size = info.Size()
	outcome.tokens = tk.CountTokens(string(data))
	return outcome
}

func readErrorMessage(err error) string {
	return fmt.Sprintf("Error reading file: %v", err)
}

// rootLabel is the display name heading the rendered tree.
func rootLabel(rootPath string) string {
	return filepath.Base(filepath.Clean(rootPath))
}

// relativeToRoot normalizes a discovered path to slash-separated,
// root-relative form for tree building and record labeling.
func relativeToRoot(rootPath, path string) string {
	if filepath.IsAbs(path) {
		if rel, err := filepath.Rel(rootPath, path); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(path)
}

// absoluteUnderRoot resolves a discovered path for reading.
func absoluteUnderRoot(rootPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootPath, path)
}
