package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteComputeTotal counts quote computations by outcome.
	QuoteComputeTotal *prometheus.CounterVec
	// CatalogCacheTotal counts catalog cache lookups by source and result.
	CatalogCacheTotal *prometheus.CounterVec
	// AnalysisTotal counts bill savings analyses by outcome.
	AnalysisTotal *prometheus.CounterVec
	// CommissionEstimateTotal counts commission estimate requests.
	CommissionEstimateTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteComputeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_compute_total",
			Help:      "Count of quote computations by outcome.",
		}, []string{"result"})
		CatalogCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_total",
			Help:      "Count of catalog cache lookups by source and result.",
		}, []string{"source", "result"})
		AnalysisTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bill_analysis_total",
			Help:      "Count of bill savings analyses by outcome.",
		}, []string{"result"})
		CommissionEstimateTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commission_estimate_total",
			Help:      "Total number of commission estimates computed.",
		})

		mustRegisterCollector(reg, QuoteComputeTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuoteComputeTotal = v
			}
		})
		mustRegisterCollector(reg, CatalogCacheTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CatalogCacheTotal = v
			}
		})
		mustRegisterCollector(reg, AnalysisTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				AnalysisTotal = v
			}
		})
		mustRegisterCollector(reg, CommissionEstimateTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				CommissionEstimateTotal = v
			}
		})
	})
}

// ObserveQuoteCompute increments the quote computation counter when metrics are enabled.
func ObserveQuoteCompute(result string) {
	if QuoteComputeTotal != nil {
		QuoteComputeTotal.WithLabelValues(result).Inc()
	}
}

// ObserveCatalogCache increments the catalog cache counter when metrics are enabled.
func ObserveCatalogCache(source, result string) {
	if CatalogCacheTotal != nil {
		CatalogCacheTotal.WithLabelValues(source, result).Inc()
	}
}

// ObserveAnalysis increments the bill analysis counter when metrics are enabled.
func ObserveAnalysis(result string) {
	if AnalysisTotal != nil {
		AnalysisTotal.WithLabelValues(result).Inc()
	}
}

// ObserveCommissionEstimate increments the commission estimate counter when metrics are enabled.
func ObserveCommissionEstimate() {
	if CommissionEstimateTotal != nil {
		CommissionEstimateTotal.Inc()
	}
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, replace func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			replace(are.ExistingCollector)
			return
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
}
