// Package observe provides floyd.Observer implementations that forward the
// progress of a snapshot build to structured logs and OpenTelemetry.
//
//   - Logger writes one debug line per elimination step and one info line on
//     completion through github.com/charmbracelet/log.
//   - Telemetry opens a span per build, adds one span event per step and
//     records the relaxation counter and the build-duration histogram.
//   - Multi fans events out to several observers in order.
//
// None of these types alter the computation; they only watch it. A Telemetry
// value belongs to one Solver; Instruments may be shared by many.
package observe
