package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := New()

	m.RecordEvent("sale")
	m.RecordEvent("sale")
	m.RecordEvent("expense")
	m.RecordJournalLines(7)
	m.RecordStockRejection()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.eventsProcessed.WithLabelValues("sale")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.eventsProcessed.WithLabelValues("expense")))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.journalLines))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.stockRejections))
}
