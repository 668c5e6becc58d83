package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ShopMetrics содержит метрики корзины, оформления и жизненного цикла заказов.
// Методы безопасны для nil-получателя: сервисы в тестах работают без метрик.
type ShopMetrics struct {
	checkouts        *prometheus.CounterVec
	checkoutDuration prometheus.Histogram
	cartMutations    *prometheus.CounterVec
	retries          *prometheus.CounterVec
	transitions      *prometheus.CounterVec
	restoredUnits    prometheus.Counter

	outboxEvents  *prometheus.CounterVec
	outboxPending prometheus.Gauge
	outboxLag     prometheus.Gauge

	remoteStockCalls *prometheus.CounterVec
	cartCache        *prometheus.CounterVec
	restockMessages  *prometheus.CounterVec

	idemCleanupRuns    *prometheus.CounterVec
	idemCleanupDeleted prometheus.Counter
	idemCleanupLast    prometheus.Gauge
	idemReleased       prometheus.Counter
}

// NewShopMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewShopMetrics() *ShopMetrics {
	return NewShopMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewShopMetricsWithRegisterer регистрирует метрики в переданном реестре.
func NewShopMetricsWithRegisterer(registerer prometheus.Registerer) *ShopMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ShopMetrics{
		checkouts: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_checkout_total",
			Help: "Checkout attempts by result",
		}, "result"),
		checkoutDuration: histogram(registerer, prometheus.HistogramOpts{
			Name:    "shop_checkout_duration_seconds",
			Help:    "Checkout duration including concurrency retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}),
		cartMutations: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_cart_mutations_total",
			Help: "Cart mutations by operation and result",
		}, "operation", "result"),
		retries: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_concurrency_retries_total",
			Help: "Optimistic concurrency retries by operation",
		}, "operation"),
		transitions: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_order_transitions_total",
			Help: "Order status transitions",
		}, "from", "to"),
		restoredUnits: counter(registerer, prometheus.CounterOpts{
			Name: "shop_stock_restored_units_total",
			Help: "Stock units returned by order cancellation",
		}),
		outboxEvents: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_outbox_events_total",
			Help: "Outbox events processed by result",
		}, "result"),
		outboxPending: gauge(registerer, prometheus.GaugeOpts{
			Name: "shop_outbox_pending",
			Help: "Number of pending outbox events",
		}),
		outboxLag: gauge(registerer, prometheus.GaugeOpts{
			Name: "shop_outbox_oldest_pending_age_seconds",
			Help: "Age of the oldest pending outbox event",
		}),
		remoteStockCalls: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_remote_stock_calls_total",
			Help: "Calls to the remote stock service by operation and outcome",
		}, "operation", "outcome"),
		cartCache: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_cart_cache_total",
			Help: "Cart cache lookups by result",
		}, "result"),
		restockMessages: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_restock_messages_total",
			Help: "Restock messages consumed by result",
		}, "result"),
		idemCleanupRuns: counterVec(registerer, prometheus.CounterOpts{
			Name: "shop_idempotency_cleanup_runs_total",
			Help: "Idempotency cleanup runs by result",
		}, "result"),
		idemCleanupDeleted: counter(registerer, prometheus.CounterOpts{
			Name: "shop_idempotency_cleanup_deleted_total",
			Help: "Expired idempotency records deleted",
		}),
		idemCleanupLast: gauge(registerer, prometheus.GaugeOpts{
			Name: "shop_idempotency_cleanup_last_deleted",
			Help: "Records deleted during the last cleanup run",
		}),
		idemReleased: counter(registerer, prometheus.CounterOpts{
			Name: "shop_idempotency_stale_released_total",
			Help: "Idempotency keys stuck in processing and released for retry",
		}),
	}
}

// RecordCheckout учитывает попытку оформления и её длительность.
func (m *ShopMetrics) RecordCheckout(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(result).Inc()
	m.checkoutDuration.Observe(duration.Seconds())
}

func (m *ShopMetrics) RecordCartMutation(operation, result string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(operation, result).Inc()
}

func (m *ShopMetrics) RecordRetry(operation string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(operation).Inc()
}

func (m *ShopMetrics) RecordTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *ShopMetrics) RecordStockRestored(units int) {
	if m == nil || units <= 0 {
		return
	}
	m.restoredUnits.Add(float64(units))
}

// RecordOutboxEvent учитывает обработку события outbox: sent, failed или retry.
func (m *ShopMetrics) RecordOutboxEvent(result string) {
	if m == nil {
		return
	}
	m.outboxEvents.WithLabelValues(result).Inc()
}

// SetOutboxBacklog выставляет размер backlog и возраст самого старого события.
func (m *ShopMetrics) SetOutboxBacklog(pending int, oldestAge time.Duration) {
	if m == nil {
		return
	}
	m.outboxPending.Set(float64(pending))
	m.outboxLag.Set(oldestAge.Seconds())
}

func (m *ShopMetrics) RecordRemoteStockCall(operation, outcome string) {
	if m == nil {
		return
	}
	m.remoteStockCalls.WithLabelValues(operation, outcome).Inc()
}

func (m *ShopMetrics) RecordCartCache(result string) {
	if m == nil {
		return
	}
	m.cartCache.WithLabelValues(result).Inc()
}

func (m *ShopMetrics) RecordRestockMessage(result string) {
	if m == nil {
		return
	}
	m.restockMessages.WithLabelValues(result).Inc()
}

// RecordIdempotencyCleanup учитывает прогон очистки ключей идемпотентности.
func (m *ShopMetrics) RecordIdempotencyCleanup(result string, deleted int) {
	if m == nil {
		return
	}
	m.idemCleanupRuns.WithLabelValues(result).Inc()
	if result != "ok" {
		return
	}
	m.idemCleanupLast.Set(float64(deleted))
}

// RecordIdempotencyDeleted учитывает удалённые записи одной порции.
func (m *ShopMetrics) RecordIdempotencyDeleted(deleted int) {
	if m == nil || deleted <= 0 {
		return
	}
	m.idemCleanupDeleted.Add(float64(deleted))
}

func (m *ShopMetrics) RecordIdempotencyReleased(released int) {
	if m == nil || released <= 0 {
		return
	}
	m.idemReleased.Add(float64(released))
}
