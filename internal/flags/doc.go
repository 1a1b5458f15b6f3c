// Package flags owns the flag type catalog, per-match flag instance
// state, and the binary wire codec shared by server and clients.
//
// Ownership boundary:
// - flag type descriptors and the per-session registry
// - flag instance status transitions
// - compact/custom/instance wire records
//
// Two kinds of flags exist: team flags and superflags. A team flag
// belongs to one team and may be captured; a superflag changes the
// behavior of the tank carrying it, for better or worse. Superflags
// are created and destroyed under server control, so the set of live
// flags changes over a match. Gameplay policy (when to spawn, when a
// sticky flag may finally be shed) lives outside this package; so do
// transport framing and physics.
package flags
