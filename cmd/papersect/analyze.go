package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgallion1/papersect/internal/analyze"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-url>",
	Short: "Extract sections from a paper and print the summary report",
	Long: `Analyze reads a local paper (.html, .md, .pdf, .docx, .txt) or fetches an
http(s) URL, extracts its sections and prints the plain-text summary report.
Use --json for the full result including highlights, questions and
flashcards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runAnalysis(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		out, _ := cmd.Flags().GetString("out")

		var w io.Writer = cmd.OutOrStdout()
		if out != "" {
			if info, err := os.Stat(out); err == nil && info.IsDir() {
				out = filepath.Join(out, outputFilename(res, asJSON))
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			w = f
		}

		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		_, err = io.WriteString(w, res.Report)
		return err
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "output the full analysis as JSON")
	analyzeCmd.Flags().String("out", "", "write output to this file, or into this directory under the report filename (.json with --json)")

	rootCmd.AddCommand(analyzeCmd)
}

// runAnalysis analyzes target, which is either an http(s) URL or a local path.
func runAnalysis(ctx context.Context, target string) (*analyze.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d := viper.GetDuration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	a := newAnalyzer()
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return a.AnalyzeURL(ctx, target)
	}

	f, err := os.Open(target)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	limit := viper.GetInt64("max-bytes")
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%s exceeds max size (%d bytes)", target, limit)
	}
	return a.AnalyzeFile(ctx, filepath.Base(target), data)
}

// outputFilename names the file written into an --out directory.
func outputFilename(res *analyze.Result, asJSON bool) string {
	if asJSON {
		return strings.TrimSuffix(res.ReportFilename, filepath.Ext(res.ReportFilename)) + ".json"
	}
	return res.ReportFilename
}
