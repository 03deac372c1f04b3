package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/yourusername/resumeiq-api/internal/model"
)

func printReport(w io.Writer, resp model.AnalysisResponse) {
	res := resp.Analysis

	title := "Resume analysis"
	if resp.Filename != "" {
		title += ": " + resp.Filename
	}
	fmt.Fprintf(w, "%s (industry: %s)\n", title, resp.Industry)
	fmt.Fprintln(w, strings.Repeat("-", 60))

	row(w, "Words", fmt.Sprintf("%d", res.WordCount))
	row(w, "Sentences", fmt.Sprintf("%d", res.SentenceCount))
	row(w, "Avg words/sentence", fmt.Sprintf("%.1f", res.AverageWordsPerSentence))
	row(w, "Readability", colorScore(resp.NLPMetrics.ReadabilityScore))
	row(w, "Action verbs", fmt.Sprintf("%d (%.1f%%) %s",
		len(res.ActionVerbsUsed), res.ActionVerbsPercentage, joinList(res.ActionVerbsUsed)))
	row(w, "Industry keywords", fmt.Sprintf("%d (%.1f%%) %s",
		len(res.IndustryKeywordsFound), res.KeywordDensity, joinList(res.IndustryKeywordsFound)))

	metrics := color.RedString("none")
	if res.HasQuantifiableAchievements {
		metrics = fmt.Sprintf("%d %s", len(res.QuantifiableMetrics), joinList(res.QuantifiableMetrics))
	}
	row(w, "Quantified results", metrics)

	if len(resp.MissingKeywords) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Consider adding:")
		for _, kw := range resp.MissingKeywords {
			fmt.Fprintf(w, "  - %s\n", kw)
		}
	}
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-20s %s\n", label, value)
}

// colorScore colors a 0-100 score green, yellow or red
func colorScore(score int) string {
	if score >= 80 {
		return color.GreenString("%d", score)
	} else if score >= 60 {
		return color.YellowString("%d", score)
	}
	return color.RedString("%d", score)
}

func joinList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "[" + strings.Join(items, ", ") + "]"
}
