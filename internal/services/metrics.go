package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nickstore_catalog_mutations_total",
		Help: "Catalog create and delete operations by entity and result",
	}, []string{"entity", "operation", "result"})

	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nickstore_auth_attempts_total",
		Help: "Login and registration attempts by result",
	}, []string{"operation", "result"})

	seededCategories = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nickstore_seeded_categories_total",
		Help: "Default categories inserted by startup seeding",
	})
)

// observeMutation records the outcome of a catalog create or delete
func observeMutation(entity, operation string, err error) {
	catalogMutations.WithLabelValues(entity, operation, resultLabel(err)).Inc()
}

// observeAuth records the outcome of a login or registration
func observeAuth(operation string, err error) {
	authAttempts.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isBusinessError(err):
		return "rejected"
	}
	return "error"
}
