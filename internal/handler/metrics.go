package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "repair_service",
		Name:      "orders_created_total",
		Help:      "Количество созданных заказов",
	})

	statusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "repair_service",
		Name:      "order_status_changes_total",
		Help:      "Количество смен статусов по целевому статусу",
	}, []string{"status"})

	trackLookups = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "repair_service",
		Name:      "track_lookups_total",
		Help:      "Количество успешных запросов трекинга",
	})
)
