package galaga

// Telemetry receives internal fault reports from the simulation.
// The game package stays free of logging dependencies; the platform layer
// plugs in a real logger (charmbracelet/log satisfies this directly).
type Telemetry interface {
	Error(msg interface{}, keyvals ...interface{})
}

// nopTelemetry discards all reports. Used when no collaborator is wired in,
// e.g. in tests.
type nopTelemetry struct{}

func (nopTelemetry) Error(msg interface{}, keyvals ...interface{}) {}
