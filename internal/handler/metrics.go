package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of successfully created orders",
		},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: "orders",
			Name:      "failed_total",
			Help:      "Total number of failed order creation attempts",
		},
	)

	orderQuotesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: "orders",
			Name:      "quotes_total",
			Help:      "Total number of successful order price calculations",
		},
	)

	orderQuotesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: "orders",
			Name:      "quotes_failed_total",
			Help:      "Total number of failed order price calculations",
		},
	)

	dashboardRenders = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: "dashboard",
			Name:      "renders_total",
			Help:      "Total number of dashboard renders",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		ordersFailed,
		orderQuotesTotal,
		orderQuotesFailed,
		dashboardRenders,
	)
}
