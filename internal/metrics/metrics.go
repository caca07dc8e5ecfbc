package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TicketsEnqueued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrollment_tickets_enqueued_total",
			Help: "Tickets created or switched, by specialization.",
		},
		[]string{"specialization"},
	)

	TicketsDequeued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrollment_tickets_dequeued_total",
		Help: "Tickets dequeued by admins.",
	})

	QueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "enrollment_queue_depth",
		Help: "Tickets currently waiting in the queue.",
	})
)

// Init - registrasi ke default registry, panggil sekali dari main
func Init() {
	prometheus.MustRegister(TicketsEnqueued, TicketsDequeued, QueueDepth)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
