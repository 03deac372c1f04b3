package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindQuantifiableMetrics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"percentages in order", "improved throughput by 35% and reduced errors by 12%", []string{"35%", "12%"}},
		{"duplicates kept", "10% then 10% again", []string{"10%", "10%"}},
		{"currency with commas", "$1,500,000 in savings", []string{"$1,500,000"}},
		{"scale word after number", "led a team of 12 people across 3 projects", []string{"3 projects"}},
		{"plus sign and no space", "served 20+ customers and 5k users", []string{"20+ customers", "5k"}},
		{"class order beats text order", "grew 20+ customers to $5,000 mrr, up 40%", []string{"40%", "$5,000", "20+ customers"}},
		{"scale words are case-insensitive", "2 MILLION downloads", []string{"2 MILLION"}},
		{"non-breaking space before scale word", "10\u00a0users and 3\u2009years", []string{"10\u00a0users", "3\u2009years"}},
		{"byte order mark before scale word", "4\ufeffprojects", []string{"4\ufeffprojects"}},
		{"nothing numeric", "hard working team player", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findQuantifiableMetrics(tt.in)
			assert.NotNil(t, got)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
