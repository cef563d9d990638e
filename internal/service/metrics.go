package service

import "github.com/prometheus/client_golang/prometheus"

var (
	tapsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_taps_total",
		Help: "Total taps processed",
	})
	levelUpsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_level_ups_total",
		Help: "Total level-ups granted",
	})
	achievementsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_achievements_granted_total",
		Help: "Total achievement grants",
	})
	storageFullTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_storage_full_total",
		Help: "Total credits clamped by a full storage",
	})
)

func init() {
	prometheus.MustRegister(tapsTotal, levelUpsTotal, achievementsTotal, storageFullTotal)
}
