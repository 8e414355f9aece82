package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rustscope/internal/analysis"
	"rustscope/internal/config"
	"rustscope/internal/crawler"
	"rustscope/internal/extractor"
	"rustscope/internal/manifest"
	"rustscope/internal/report"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "rustscope",
		Short: "Variable mutability and declaration inventory for Rust projects",
	}

	flagConfig  string
	flagOutput  string
	flagFormat  string
	flagSort    bool
	flagLink    bool
	flagExclude []string

	scanCmd = &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a Rust project and report every variable binding and declaration",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadOrDefault(flagConfig)
			applyFlags(cmd, cfg, args)

			root, err := filepath.Abs(cfg.Project.Root)
			if err != nil {
				log.Fatalf("Invalid project directory: %v", err)
			}

			meta := report.Metadata{Timestamp: time.Now().Format(time.RFC3339)}
			projectMeta := manifest.Load(root)
			meta.ProjectName = projectMeta.Name
			meta.Version = projectMeta.Version

			fmt.Printf("🔍 Analyzing Rust project at %s (%s %s)...\n", root, meta.ProjectName, meta.Version)

			ext := extractor.NewExtractor()
			cr := crawler.NewCrawler(ext, cfg.Project.Exclude)

			total, err := cr.CountFiles(root)
			if err != nil {
				log.Fatalf("Failed to scan project: %v", err)
			}

			bar := progressbar.NewOptions(total,
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Scanning[reset]"),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionClearOnFinish(),
			)

			results := &extractor.Result{}
			err = cr.ScanProject(root, func(path string, rep *extractor.FileReport) {
				results.Merge(rep)
				_ = bar.Add(1)
			})
			if err != nil {
				log.Fatalf("Failed to scan project: %v", err)
			}

			if cfg.Output.Sort {
				results.SortByName()
			}

			summary := analysis.NewAnalyzer(results).Summarize()
			fmt.Println("\n\x1b[1mSummary:\x1b[0m")
			fmt.Printf("Found %d mutable variables\n", summary.MutableCount)
			fmt.Printf("Found %d immutable variables\n", summary.ImmutableCount)
			fmt.Printf("Found %d declarations\n", summary.DeclarationCount)
			if summary.MutableCount+summary.ImmutableCount > 0 {
				fmt.Printf("Mutable ratio: %.1f%%\n", summary.MutableRatio*100)
			}
			if scopes := summary.TopScopes(3); len(scopes) > 0 {
				fmt.Printf("Busiest scopes: %s\n", strings.Join(scopes, ", "))
			}

			if cfg.Output.File != "" {
				if err := report.WriteFile(cfg.Output.File, cfg.Output.Format, results, meta, cfg.Output.Link); err != nil {
					log.Fatalf("Failed to write results: %v", err)
				}
				fmt.Printf("✅ Results written to %s\n", cfg.Output.File)
				return
			}

			report.Print(os.Stdout, results, meta, cfg.Output.Link)
		},
	}

	treeCmd = &cobra.Command{
		Use:   "tree [dir]",
		Short: "Print a tree view of the project's Rust source files",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			fmt.Printf("Project tree for %s:\n", dir)
			if err := printTree(dir, 0); err != nil {
				log.Fatalf("Failed to read directory: %v", err)
			}
		},
	}
)

// applyFlags layers explicitly set command-line flags over the config.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Project.Root = args[0]
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.File = flagOutput
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flagFormat
	}
	if cmd.Flags().Changed("sort") {
		cfg.Output.Sort = flagSort
	}
	if cmd.Flags().Changed("link") {
		cfg.Output.Link = flagLink
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Project.Exclude = append(cfg.Project.Exclude, flagExclude...)
	}
}

// printTree renders directories and .rs files, skipping build output.
func printTree(dir string, indent int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	pad := strings.Repeat(" ", indent)
	for _, entry := range entries {
		if entry.IsDir() {
			if entry.Name() == "target" || entry.Name() == ".git" {
				continue
			}
			fmt.Printf("%s📂 %s\n", pad, entry.Name())
			if err := printTree(filepath.Join(dir, entry.Name()), indent+2); err != nil {
				return err
			}
		} else if strings.HasSuffix(entry.Name(), ".rs") {
			fmt.Printf("%s📄 %s\n", pad, entry.Name())
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	scanCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write results to this file instead of stdout")
	scanCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "output format: text, json, or csv")
	scanCmd.Flags().BoolVar(&flagSort, "sort", false, "sort variables by name (stable)")
	scanCmd.Flags().BoolVar(&flagLink, "link", false, "include vscode:// links in the output")
	scanCmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "glob patterns to skip (may repeat)")
	scanCmd.Flags().StringVar(&flagConfig, "config", "rustscope.yaml", "path to config file")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(treeCmd)
}
