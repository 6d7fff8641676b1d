package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

// Module provides business-event metrics.
var Module = fx.Provide(New)

// Metrics tracks accounting engine activity.
type Metrics struct {
	eventsProcessed *prometheus.CounterVec
	journalLines    prometheus.Counter
	stockRejections prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		eventsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockbook",
			Name:      "events_processed_total",
			Help:      "Business events processed by the accounting engine.",
		}, []string{"event_type"}),
		journalLines: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "stockbook",
			Name:      "journal_lines_total",
			Help:      "Journal lines written.",
		}),
		stockRejections: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "stockbook",
			Name:      "insufficient_stock_total",
			Help:      "Sales rejected for insufficient stock.",
		}),
	}
}

func (m *Metrics) RecordEvent(eventType string) {
	m.eventsProcessed.WithLabelValues(eventType).Inc()
}

func (m *Metrics) RecordJournalLines(n int) {
	m.journalLines.Add(float64(n))
}

func (m *Metrics) RecordStockRejection() {
	m.stockRejections.Inc()
}
