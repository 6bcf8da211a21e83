package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Filtering
	excludePatterns string
	includeExts     string
	excludeExts     string
	maxSizeBytes    int64
	maxDepth        int
	showHidden      bool
	noIgnore        bool

	// Output
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string

	// Processing
	numThreads int

	// Token Counting
	tokenizerType  string
	tokenizerModel string
	tokenizerFile  string

	// Web Specific
	traverseLinks bool
	linkDepth     int

	// Interactive Mode
	interactiveMode bool
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "vsingest [PATHS...]",
	Short: "vsingest aggregates a project's text files into one LLM-ready digest.",
	Long: `vsingest scans local directories, Git repositories, or web URLs, renders a
directory tree, and concatenates classified text files with size and token
totals into a single document for pasting into a language-model prompt.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots := args
		if interactiveMode {
			selected, err := runInteractiveFinder()
			if err != nil {
				return fmt.Errorf("interactive mode error: %w", err)
			}
			if selected == nil {
				return nil
			}
			roots = selected
		}
		if len(roots) == 0 {
			roots = []string{"."}
		}

		tokenizer, err := getTokenizer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing tokenizer: %v\n", err)
			fmt.Fprintln(os.Stderr, "Falling back to heuristic token estimation.")
			tokenizer = HeuristicTokenizer{}
		}
		defer tokenizer.Close()

		overrides, err := loadExtensionOverrides()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		classifier := Classifier{
			Include: append(overrides.Include, splitList(includeExts)...),
			Exclude: append(overrides.Exclude, splitList(excludeExts)...),
		}

		scanner := &Scanner{
			Workers:    numThreads,
			Classifier: classifier,
			Tokenizer:  tokenizer,
		}
		walker := Walker{
			Excludes:   splitList(excludePatterns),
			ShowHidden: showHidden,
			NoIgnore:   noIgnore,
			MaxDepth:   maxDepth,
			MaxSize:    maxSizeBytes,
		}

		var tempDirsToClean []string
		defer func() {
			for _, dir := range tempDirsToClean {
				_ = os.RemoveAll(dir)
			}
		}()

		var digests []string
		var failed int
		for _, root := range roots {
			var result ScanResult

			switch {
			case isWebURL(root):
				result = scanWebRoot(root, tokenizer)
			case isGitURL(root):
				tempDir, err := cloneGitRepo(root)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", root, err)
					failed++
					continue
				}
				tempDirsToClean = append(tempDirsToClean, tempDir)
				result = scanLocalRoot(scanner, walker, tempDir)
			default:
				result = scanLocalRoot(scanner, walker, root)
			}

			digests = append(digests, renderDigest(result))

			if pdfOutputFile != "" {
				if err := generatePDF(result, pdfOutputFile); err != nil {
					fmt.Fprintf(os.Stderr, "Error generating PDF: %v\n", err)
				}
			}
		}

		if pdfOutputFile == "" {
			if err := writeOutput(strings.Join(digests, "\n")); err != nil {
				return err
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d path(s) failed to process", failed)
		}
		return nil
	},
}

// scanLocalRoot enumerates files under a directory root and aggregates
// them. A root that cannot be resolved produces the sentinel result rather
// than an error.
func scanLocalRoot(scanner *Scanner, walker Walker, root string) ScanResult {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = ""
	} else if info, statErr := os.Stat(absRoot); statErr != nil || !info.IsDir() {
		if statErr == nil && !info.IsDir() {
			// Single-file root: the file is its own discovery list.
			return scanner.Scan(filepath.Dir(absRoot), []string{filepath.Base(absRoot)})
		}
		absRoot = ""
	}
	if absRoot == "" {
		return scanner.Scan("", nil)
	}

	discovered, errs := walker.Discover(absRoot)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", e)
	}
	return scanner.Scan(absRoot, discovered)
}

// scanWebRoot fetches one or more pages and shapes them as a scan result
// so they flow through the same digest/output path as local files.
func scanWebRoot(root string, tokenizer Tokenizer) ScanResult {
	depth := 0
	if traverseLinks {
		depth = linkDepth
	}
	pages := fetchWebPages(root, depth, tokenizer)

	result := ScanResult{
		Structure: root,
		Summary:   SummaryInfo{FileCount: len(pages)},
		Contents:  make([]FileRecord, 0, len(pages)),
	}
	for _, page := range pages {
		result.Contents = append(result.Contents, page.record)
		result.Summary.TotalSize += page.size
		result.Summary.EstimatedTokens += page.tokens
	}
	return result
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func init() {
	cobra.OnInitialize(initConfig)

	// Filtering
	rootCmd.Flags().StringVarP(&excludePatterns, "exclude", "e", "", "Exclusion globs applied during discovery (comma-separated, e.g. **/dist/**)")
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	viper.BindPFlag("default_excludes", rootCmd.Flags().Lookup("exclude"))
	rootCmd.Flags().StringVar(&includeExts, "include-ext", "", "Extra extensions to classify as text (comma-separated)")
	viper.BindPFlag("include_ext", rootCmd.Flags().Lookup("include-ext"))
	rootCmd.Flags().StringVar(&excludeExts, "exclude-ext", "", "Extensions to drop from the text allow-list (comma-separated)")
	viper.BindPFlag("exclude_ext", rootCmd.Flags().Lookup("exclude-ext"))
	rootCmd.Flags().Int64VarP(&maxSizeBytes, "max-size", "s", 0, "Maximum file size in bytes (0 for no limit)")
	viper.BindPFlag("max_size", rootCmd.Flags().Lookup("max-size"))
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum directory depth to traverse (0 for no limit)")
	viper.BindPFlag("max_depth", rootCmd.Flags().Lookup("max-depth"))
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "Include hidden files and directories")
	viper.BindPFlag("hidden", rootCmd.Flags().Lookup("hidden"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect .gitignore files")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))

	// Output
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the digest to the specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the digest to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Save the digest as a PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	// Processing
	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "Read concurrency (0 for one worker per CPU)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))

	// Token Counting
	rootCmd.Flags().StringVar(&tokenizerType, "tokenizer", "heuristic", "Tokenizer: heuristic, tiktoken, or huggingface")
	viper.BindPFlag("tokenizer", rootCmd.Flags().Lookup("tokenizer"))
	rootCmd.Flags().StringVar(&tokenizerModel, "model", "", "Model name for tokenizer (e.g., gpt-4o, gpt2)")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	rootCmd.Flags().StringVar(&tokenizerFile, "tokenizer-file", "", "Path to local tokenizer file")
	viper.BindPFlag("tokenizer_file", rootCmd.Flags().Lookup("tokenizer-file"))

	// Web Specific
	rootCmd.Flags().BoolVar(&traverseLinks, "traverse-links", false, "Traverse links when processing URLs")
	viper.BindPFlag("traverse_links", rootCmd.Flags().Lookup("traverse-links"))
	rootCmd.Flags().IntVar(&linkDepth, "link-depth", 1, "Maximum depth to traverse links")
	viper.BindPFlag("link_depth", rootCmd.Flags().Lookup("link-depth"))

	// Interactive Mode
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Open an interactive fuzzy picker for scan roots")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	viper.SetDefault("max_size", 10485760) // 10MB
	viper.SetDefault("max_depth", 20)
	viper.SetDefault("threads", 0)
	viper.SetDefault("tokenizer", "heuristic")
	viper.SetDefault("link_depth", 1)
	viper.SetDefault("default_excludes", []string{
		"**/.git/**",
		"**/target/**",
		"**/node_modules/**",
	})
}

// initConfig reads in config file and VSINGEST_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, ".config", "vsingest"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("VSINGEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	applyViperConfig()
}

// applyViperConfig copies the effective settings back into the flag
// variables. Through BindPFlag viper resolves flag > env > config > default
// for each key, so a changed flag always wins.
func applyViperConfig() {
	maxSizeBytes = viper.GetInt64("max_size")
	maxDepth = viper.GetInt("max_depth")
	showHidden = viper.GetBool("hidden")
	noIgnore = viper.GetBool("no_ignore")
	includeExts = viper.GetString("include_ext")
	excludeExts = viper.GetString("exclude_ext")
	outputFile = viper.GetString("file")
	copyToClipboard = viper.GetBool("clipboard")
	pdfOutputFile = viper.GetString("pdf")
	numThreads = viper.GetInt("threads")
	tokenizerType = viper.GetString("tokenizer")
	tokenizerModel = viper.GetString("model")
	tokenizerFile = viper.GetString("tokenizer_file")
	traverseLinks = viper.GetBool("traverse_links")
	linkDepth = viper.GetInt("link_depth")
	interactiveMode = viper.GetBool("interactive")

	// The default exclude set lives in config under default_excludes; an
	// explicit -e overrides it.
	if !rootCmd.Flags().Changed("exclude") {
		excludePatterns = strings.Join(viper.GetStringSlice("default_excludes"), ",")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
