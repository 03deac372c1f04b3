package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/resumeiq-api/internal/analyzer"
	"github.com/yourusername/resumeiq-api/internal/extract"
	"github.com/yourusername/resumeiq-api/internal/model"
)

func runAnalyze(cmd *cobra.Command, opts *options, path string) error {
	a, err := loadAnalyzer(opts.referencePath)
	if err != nil {
		return err
	}

	rec, err := readRecord(path)
	if err != nil {
		return err
	}
	if !rec.HasContent() {
		return fmt.Errorf("%s: resume has no content to analyze", path)
	}

	industry := normalizeIndustry(opts.industry)
	resp := newResponse(a, industry, "", a.Analyze(rec, industry))
	return render(cmd, opts, resp)
}

func runScan(cmd *cobra.Command, opts *options, path string) error {
	a, err := loadAnalyzer(opts.referencePath)
	if err != nil {
		return err
	}

	text, err := extract.File(path)
	if err != nil {
		return fmt.Errorf("extracting text from %s: %w", path, err)
	}

	industry := normalizeIndustry(opts.industry)
	resp := newResponse(a, industry, filepath.Base(path), a.AnalyzeText(text, industry))
	return render(cmd, opts, resp)
}

func runKeywords(cmd *cobra.Command, opts *options) error {
	a, err := loadAnalyzer(opts.referencePath)
	if err != nil {
		return err
	}

	industry := normalizeIndustry(opts.industry)
	keywords := a.RelevantKeywords(industry, []string{opts.skills})

	out := cmd.OutOrStdout()
	if len(keywords) == 0 {
		fmt.Fprintf(out, "Your skills already cover the %s keywords.\n", industry)
		return nil
	}

	fmt.Fprintf(out, "Suggested keywords for %s:\n", industry)
	for _, kw := range keywords {
		fmt.Fprintf(out, "  - %s\n", kw)
	}
	return nil
}

// ── Helpers ──────────────────────────────────────────

func loadAnalyzer(referencePath string) (*analyzer.Analyzer, error) {
	if referencePath == "" {
		return analyzer.New(nil), nil
	}
	ref, err := analyzer.LoadReferenceData(referencePath)
	if err != nil {
		return nil, err
	}
	return analyzer.New(ref), nil
}

// readRecord decodes a resume record, as YAML for .yaml/.yml files and JSON otherwise
func readRecord(path string) (*model.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume: %w", err)
	}

	var rec model.ResumeRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &rec)
	default:
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &rec, nil
}

func normalizeIndustry(raw string) string {
	if tag := strings.ToLower(strings.TrimSpace(raw)); tag != "" {
		return tag
	}
	return analyzer.GeneralIndustry
}

func newResponse(a *analyzer.Analyzer, industry, filename string, res model.AnalysisResult) model.AnalysisResponse {
	return model.AnalysisResponse{
		ID:              uuid.NewString(),
		Industry:        industry,
		Filename:        filename,
		Analysis:        res,
		NLPMetrics:      analyzer.Summarize(res),
		MissingKeywords: a.MissingKeywords(industry, res.IndustryKeywordsFound, analyzer.MissingKeywordLimit),
	}
}

func render(cmd *cobra.Command, opts *options, resp model.AnalysisResponse) error {
	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	printReport(cmd.OutOrStdout(), resp)
	return nil
}
