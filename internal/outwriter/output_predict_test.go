package outwriter

import (
	"testing"
	"time"

	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/huangsam/sdrfbench/schema"
	"github.com/stretchr/testify/assert"
)

func TestPrintPredictSummary(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"ID", "PXD", "Raw Data File", "organism"},
		Rows: []schema.Row{
			{"ID": "1", "PXD": "PXD001819", "Raw Data File": "run01.raw", "organism": "homo sapiens"},
			{"ID": "2", "PXD": "PXD004684", "Raw Data File": "run02.raw", "organism": "mus musculus"},
		},
	}

	tests := []struct {
		name string
		cfg  *contract.Config
	}{
		{
			name: "text with placeholder provider",
			cfg: &contract.Config{
				Output:   schema.TextOut,
				GroupKey: "PXD",
				Provider: schema.NoneProvider,
				Workers:  4,
			},
		},
		{
			name: "text with llm provider",
			cfg: &contract.Config{
				Output:       schema.TextOut,
				GroupKey:     "PXD",
				Provider:     schema.OpenAIProvider,
				Model:        "gpt-4o-mini",
				CacheBackend: schema.SQLiteBackend,
				Workers:      4,
			},
		},
		{
			name: "json summary",
			cfg: &contract.Config{
				Output:   schema.JSONOut,
				GroupKey: "PXD",
				Provider: schema.NoneProvider,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PrintPredictSummary(table, "submission.csv", tt.cfg, time.Second)
			assert.NoError(t, err)
		})
	}
}
