package common

const (
	ComponentBootstrap   = "bootstrap"
	ComponentProbe       = "head-probe"
	ComponentResolver    = "sync-resolver"
	ComponentCoordinator = "coordinator"
	ComponentProgress    = "progress-store"
	ComponentSink        = "sink"
	ComponentAPI         = "api"
	ComponentMetrics     = "metrics"
)

var AllComponents = map[string]struct{}{
	ComponentBootstrap:   {},
	ComponentProbe:       {},
	ComponentResolver:    {},
	ComponentCoordinator: {},
	ComponentProgress:    {},
	ComponentSink:        {},
	ComponentAPI:         {},
	ComponentMetrics:     {},
}
