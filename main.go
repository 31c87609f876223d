package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Filtering
	extensions       []string
	extraExcludeDirs []string
	noIgnore         bool

	// Traversal
	stackCapacity int

	// Output
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string

	// Interactive Mode
	interactiveMode bool

	langData *LoadedLanguageData
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "linebolt [PATHS...]",
	Short: "linebolt counts source lines in directory trees.",
	Long: `linebolt walks one or more directory trees (or Git repositories),
skips common build and VCS directories, and counts the lines in every file
matching the configured extensions. Each file is reported as it is counted,
followed by the grand total and the elapsed time.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()

		// Determine root paths: interactive picker or command-line args.
		var roots []string
		var err error
		if interactiveMode {
			roots, err = runInteractiveFinder(excludedDirSet())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Interactive mode error: %v\n", err)
				os.Exit(1)
			}
			if roots == nil {
				// User aborted interactive selection
				os.Exit(0)
			}
		} else {
			roots = args
			if len(roots) == 0 {
				roots = []string{"."} // the legacy no-argument behavior
			}
		}

		// Pick the report destination. Per-file records stream to it as the
		// walk progresses; only the clipboard destination has to buffer.
		var out io.Writer = os.Stdout
		var clipBuf *bytes.Buffer
		var outFile *os.File
		if outputFile != "" {
			outFile, err = os.Create(outputFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", outputFile, err)
				outFile = nil
			} else {
				out = outFile
			}
		} else if copyToClipboard {
			clipBuf = &bytes.Buffer{}
			out = clipBuf
		}

		walker := newWalker(WalkOptions{
			Extensions:    extensions,
			ExcludedDirs:  excludedDirSet(),
			StackCapacity: stackCapacity,
			NoIgnore:      noIgnore,
			Out:           out,
			ErrOut:        os.Stderr,
		})

		var failedRoots int
		var tempDirsToClean []string

		// Clean up cloned repositories even when individual roots fail.
		defer func() {
			for _, dir := range tempDirsToClean {
				_ = os.RemoveAll(dir)
			}
		}()

		for _, input := range roots {
			current := input
			if isGitURL(current) {
				tempDir, cloneErr := cloneGitRepo(current)
				if cloneErr != nil {
					fmt.Fprintf(os.Stderr, "%v\n", cloneErr)
					failedRoots++
					continue
				}
				tempDirsToClean = append(tempDirsToClean, tempDir)
				current = tempDir
			}

			info, statErr := os.Stat(current)
			if statErr != nil {
				// A bad root is reported and skipped; remaining roots still
				// count, and the exit status stays zero.
				fmt.Fprintf(os.Stderr, "%s: %v\n", current, statErr)
				failedRoots++
				continue
			}
			if info.IsDir() {
				walker.Walk(current)
			} else {
				walker.CountFile(current)
			}
		}

		files := walker.Files()
		summary := Summary{
			TotalFiles:  len(files),
			TotalLines:  walker.Total(),
			FailedRoots: failedRoots,
		}
		writeSummary(out, files, walker.Total(), langData)

		if pdfOutputFile != "" {
			if err := generatePDF(files, summary, pdfOutputFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating PDF: %v\n", err)
			}
		}

		if outFile != nil {
			if err := outFile.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", outputFile, err)
			}
			fmt.Printf("Output saved to %s\n", outputFile)
		} else if clipBuf != nil {
			if err := clipboard.WriteAll(clipBuf.String()); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing to clipboard: %v\n", err)
				fmt.Println("\n--- Output (clipboard failed) ---")
				fmt.Print(clipBuf.String())
			} else {
				fmt.Println("Output copied to clipboard.")
			}
		}

		// The timing line always goes to the terminal, never into a saved
		// report, so re-running on an unchanged tree stays byte-identical.
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0
		fmt.Printf("\nExecution time: %.2f ms\n", elapsed)
	},
}

func init() {
	cobra.OnInitialize(initConfig, initLanguages)

	// Filtering
	rootCmd.Flags().StringSliceVarP(&extensions, "ext", "x", []string{".c", ".h"},
		"File extensions to count (comma-separated)")
	viper.BindPFlag("extensions", rootCmd.Flags().Lookup("ext"))
	rootCmd.Flags().StringSliceVarP(&extraExcludeDirs, "exclude-dir", "e", nil,
		"Additional directory names to exclude (comma-separated)")
	viper.BindPFlag("exclude_dirs", rootCmd.Flags().Lookup("exclude-dir"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect .gitignore files")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))

	// Traversal
	rootCmd.Flags().IntVar(&stackCapacity, "stack-capacity", defaultStackCapacity,
		"Maximum pending directories in the traversal stack (0 for unbounded)")
	viper.BindPFlag("stack_capacity", rootCmd.Flags().Lookup("stack-capacity"))

	// Output
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the report to the specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Also save the report as PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	// Interactive Mode
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false,
		"Pick root directories with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	viper.SetDefault("extensions", []string{".c", ".h"})
	viper.SetDefault("stack_capacity", defaultStackCapacity)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("interactive", false)
}

// initConfig reads in the config file and LINEBOLT_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, ".config", "linebolt"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LINEBOLT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
		// No config file is the normal case; defaults and flags apply.
	}

	// BindPFlag only propagates flag values into viper, never back into the
	// flag variables the run reads, so config and env values are pulled in
	// here for every flag that wasn't set explicitly.
	if !rootCmd.Flags().Changed("ext") {
		if v := viper.GetStringSlice("extensions"); len(v) > 0 {
			extensions = v
		}
	}
	if !rootCmd.Flags().Changed("exclude-dir") {
		extraExcludeDirs = viper.GetStringSlice("exclude_dirs")
	}
	if !rootCmd.Flags().Changed("stack-capacity") {
		stackCapacity = viper.GetInt("stack_capacity")
	}
	if !rootCmd.Flags().Changed("no-ignore") {
		noIgnore = viper.GetBool("no_ignore")
	}
	if !rootCmd.Flags().Changed("file") {
		outputFile = viper.GetString("file")
	}
	if !rootCmd.Flags().Changed("clipboard") {
		copyToClipboard = viper.GetBool("clipboard")
	}
	if !rootCmd.Flags().Changed("pdf") {
		pdfOutputFile = viper.GetString("pdf")
	}
	if !rootCmd.Flags().Changed("interactive") {
		interactiveMode = viper.GetBool("interactive")
	}
}

// initLanguages loads the optional language definitions used for the
// per-language summary breakdown.
func initLanguages() {
	var err error
	langData, err = loadLanguageData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load language definitions: %v\n", err)
		langData = nil
	}
}

// excludedDirSet combines the built-in exclusion set with any extra names
// from flags or config.
func excludedDirSet() []string {
	if len(extraExcludeDirs) == 0 {
		return defaultExcludedDirs
	}
	return append(append([]string{}, defaultExcludedDirs...), extraExcludeDirs...)
}

func main() {
	rootCmd.Execute()
}
