// Package main is the papersect command-line client. It runs the same
// analysis pipeline as the HTTP server against local files or URLs.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgallion1/papersect/internal/analyze"
	"github.com/dgallion1/papersect/internal/config"
	"github.com/dgallion1/papersect/internal/fetch"
	"github.com/dgallion1/papersect/internal/parser"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "papersect",
	Short: "Split research papers into sections and derive study aids",
	Long: `papersect locates the abstract, methodology, findings, limitations and
references of a research paper, highlights research vocabulary and
generates study questions and flashcards.

HTML and Markdown papers are read by heading structure. PDF, DOCX and
plain-text papers are segmented line by line.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "papersect %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := config.Load()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./papersect.yaml or ~/.config/papersect/config.yaml)")
	pf.BoolP("verbose", "v", false, "log pipeline progress to stderr")
	pf.Duration("timeout", defaults.AnalyzeTimeout, "overall analysis deadline")
	pf.Duration("fetch-timeout", defaults.FetchTimeout, "per-request HTTP timeout for URLs")
	pf.String("user-agent", defaults.FetchUserAgent, "User-Agent sent when fetching URLs")
	pf.Int64("max-bytes", defaults.FetchMaxBytes, "maximum size of a fetched page or read file")
	pf.Bool("respect-robots", defaults.FetchRespectRobots, "honor robots.txt when fetching URLs")
	pf.Bool("pdftotext", defaults.PDFFallbackPdftotext, "fall back to pdftotext when native PDF extraction fails")

	for _, name := range []string{"verbose", "timeout", "fetch-timeout", "user-agent", "max-bytes", "respect-robots", "pdftotext"} {
		_ = viper.BindPFlag(name, pf.Lookup(name))
	}

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("papersect")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "papersect"))
		}
	}

	viper.SetEnvPrefix("PAPERSECT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newAnalyzer builds an Analyzer from the merged flag, env and file settings.
func newAnalyzer() *analyze.Analyzer {
	var out io.Writer = io.Discard
	if viper.GetBool("verbose") {
		out = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(out, nil))

	fetcher := fetch.New(fetch.Options{
		Timeout:       viper.GetDuration("fetch-timeout"),
		UserAgent:     viper.GetString("user-agent"),
		MaxBytes:      viper.GetInt64("max-bytes"),
		RatePerSecond: 1,
		Burst:         1,
		RespectRobots: viper.GetBool("respect-robots"),
	}, log)
	return analyze.NewAnalyzer(fetcher, parser.Options{PDFFallbackPdftotext: viper.GetBool("pdftotext")}, nil, log)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
