package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"social_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks social_pilot/logic IMetrics

type IMetrics interface {
	ServiceStarted()
	CycleStarted(kind string)
	CycleFinished(kind, outcome string)
	ActionPerformed(actionType string)
	GeneratorCall(kind string)
	GeneratorFailure(kind string)
	CycleRunning(running bool)
	TotalProfiles(count int)
}

type metrics struct {
	cfg               *shared.Config
	serviceStarted    prometheus.Counter
	cyclesStarted     *prometheus.CounterVec
	cyclesFinished    *prometheus.CounterVec
	actionsPerformed  *prometheus.CounterVec
	generatorCalls    *prometheus.CounterVec
	generatorFailures *prometheus.CounterVec
	cycleRunning      prometheus.Gauge
	totalProfiles     prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.cyclesStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cycles_started",
		Help: "Number of automation cycles started",
	}, []string{"kind"})
	prometheus.Register(res.cyclesStarted)

	res.cyclesFinished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cycles_finished",
		Help: "Number of automation cycles finished, by outcome",
	}, []string{"kind", "outcome"})
	prometheus.Register(res.cyclesFinished)

	res.actionsPerformed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "actions_performed",
		Help: "Number of actions performed against targets",
	}, []string{"action_type"})
	prometheus.Register(res.actionsPerformed)

	res.generatorCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "generator_calls",
		Help: "Number of content generator invocations",
	}, []string{"kind"})
	prometheus.Register(res.generatorCalls)

	res.generatorFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "generator_failures",
		Help: "Number of failed content generator invocations",
	}, []string{"kind"})
	prometheus.Register(res.generatorFailures)

	res.cycleRunning = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cycle_running",
		Help: "Whether an automation cycle is currently running",
	})
	prometheus.Register(res.cycleRunning)

	res.totalProfiles = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_profile_count",
		Help: "Total number of collected profiles",
	})
	prometheus.Register(res.totalProfiles)

	return &res
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) CycleStarted(kind string) {
	m.cyclesStarted.WithLabelValues(kind).Add(1)
}

func (m *metrics) CycleFinished(kind, outcome string) {
	m.cyclesFinished.WithLabelValues(kind, outcome).Add(1)
}

func (m *metrics) ActionPerformed(actionType string) {
	m.actionsPerformed.WithLabelValues(actionType).Add(1)
}

func (m *metrics) GeneratorCall(kind string) {
	m.generatorCalls.WithLabelValues(kind).Add(1)
}

func (m *metrics) GeneratorFailure(kind string) {
	m.generatorFailures.WithLabelValues(kind).Add(1)
}

func (m *metrics) CycleRunning(running bool) {
	if running {
		m.cycleRunning.Set(1)
	} else {
		m.cycleRunning.Set(0)
	}
}

func (m *metrics) TotalProfiles(count int) {
	m.totalProfiles.Set(float64(count))
}
