// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/keycap-swiss/models"
	"github.com/danielhkuo/keycap-swiss/tournament"
)

const namespace = "keycap_swiss"

// Tournament exports controller events as Prometheus collectors. It
// implements tournament.Observer.
type Tournament struct {
	registry *prometheus.Registry

	matches      prometheus.Counter
	byes         prometheus.Counter
	eliminations prometheus.Counter
	round        prometheus.Gauge
	active       prometheus.Gauge
	complete     prometheus.Gauge
}

// New registers the tournament collectors on registry. A nil registry gets
// a fresh one.
func New(registry *prometheus.Registry, players int) *Tournament {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	t := &Tournament{
		registry: registry,
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_recorded_total",
			Help:      "Decided head-to-head matches.",
		}),
		byes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "byes_awarded_total",
			Help:      "Byes that awarded a point.",
		}),
		eliminations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_eliminated_total",
			Help:      "Players dropped after a round.",
		}),
		round: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "round",
			Help:      "Current round number.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_players",
			Help:      "Players still in the tournament.",
		}),
		complete: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "complete",
			Help:      "1 once a champion is decided.",
		}),
	}

	registry.MustRegister(t.matches, t.byes, t.eliminations, t.round, t.active, t.complete)
	t.active.Set(float64(players))
	return t
}

// Handler serves the registry in the Prometheus text format.
func (t *Tournament) Handler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{Registry: t.registry})
}

func (t *Tournament) RoundStarted(round int, _ []models.Pairing) {
	t.round.Set(float64(round))
}

func (t *Tournament) MatchRecorded(tournament.MatchEvent) {
	t.matches.Inc()
}

func (t *Tournament) ByeAwarded(int, *models.Player) {
	t.byes.Inc()
}

func (t *Tournament) PlayersEliminated(_ int, eliminated []*models.Player) {
	t.eliminations.Add(float64(len(eliminated)))
	t.active.Sub(float64(len(eliminated)))
}

func (t *Tournament) TournamentCompleted(int, []*models.Player) {
	t.complete.Set(1)
}
