package world

import (
	"net/http"

	"github.com/annel0/mmo-worldgen/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics инкапсулирует Prometheus-метрики генерации. Генератор
// обновляет их сам; экспортеру остаётся только поднять HTTP-эндпоинт.
type Metrics struct {
	chunksGenerated   prometheus.Counter
	columnsGenerated  prometheus.Counter
	generationSeconds prometheus.Histogram
	workersActive     prometheus.Gauge
}

// NewMetrics создаёт метрики и регистрирует их в глобальном регистре
func NewMetrics() *Metrics {
	m := &Metrics{
		chunksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldgen",
			Name:      "chunks_generated_total",
			Help:      "Общее число сгенерированных чанков.",
		}),
		columnsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldgen",
			Name:      "columns_generated_total",
			Help:      "Общее число сгенерированных колонн.",
		}),
		generationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "worldgen",
			Name:      "chunk_generation_seconds",
			Help:      "Время генерации одного чанка.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		workersActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "worldgen",
			Name:      "workers_active",
			Help:      "Число воркеров, занятых генерацией.",
		}),
	}

	// Регистрируем метрики в глобальном регистре Prometheus.
	prometheus.MustRegister(m.chunksGenerated, m.columnsGenerated, m.generationSeconds, m.workersActive)
	return m
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе
// (например, ":2112"). Метод неблокирующий: сервер стартует в
// отдельной горутине.
func (m *Metrics) StartHTTP(addr string) {
	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}
