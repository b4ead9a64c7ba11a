package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registry module.
// Tracks document lifecycle counts and critical path durations.
type Metrics struct {
	DocumentsCreated    prometheus.Counter
	CustodyTransfers    prometheus.Counter
	DocumentsDeleted    prometheus.Counter
	AccessDeniedReads   prometheus.Counter
	CreateDuration      prometheus.Histogram
	GetDocumentDuration prometheus.Histogram
}

// New creates a Metrics instance with all registry module metrics registered
// on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on the given registerer. Tests pass a fresh
// registry to avoid duplicate-registration panics across cases.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DocumentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "docregistry_documents_created_total",
			Help: "Total number of document records created",
		}),
		CustodyTransfers: factory.NewCounter(prometheus.CounterOpts{
			Name: "docregistry_custody_transfers_total",
			Help: "Total number of successful custody transfers",
		}),
		DocumentsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "docregistry_documents_deleted_total",
			Help: "Total number of document records deleted",
		}),
		AccessDeniedReads: factory.NewCounter(prometheus.CounterOpts{
			Name: "docregistry_access_denied_reads_total",
			Help: "Total number of document reads rejected by the authorization rule",
		}),
		CreateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "docregistry_create_duration_seconds",
			Help:    "Duration of Create operations (allocation critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		GetDocumentDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "docregistry_get_document_duration_seconds",
			Help:    "Duration of GetDocument operations (read critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementDocumentsCreated records a successful document creation.
func (m *Metrics) IncrementDocumentsCreated() {
	m.DocumentsCreated.Inc()
}

// IncrementCustodyTransfers records a successful custody transfer.
func (m *Metrics) IncrementCustodyTransfers() {
	m.CustodyTransfers.Inc()
}

// IncrementDocumentsDeleted records a successful document deletion.
func (m *Metrics) IncrementDocumentsDeleted() {
	m.DocumentsDeleted.Inc()
}

// IncrementAccessDeniedReads records a read rejected by authorization.
func (m *Metrics) IncrementAccessDeniedReads() {
	m.AccessDeniedReads.Inc()
}

// ObserveCreate records the duration of a Create operation.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveCreate(start time.Time) {
	m.CreateDuration.Observe(time.Since(start).Seconds())
}

// ObserveGetDocument records the duration of a GetDocument operation.
func (m *Metrics) ObserveGetDocument(start time.Time) {
	m.GetDocumentDuration.Observe(time.Since(start).Seconds())
}
