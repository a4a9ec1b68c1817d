// Package explorer runs the whole key-location pipeline over one map:
//
//	rows ─► gridgraph.FromStrings ─► Grid.KeyLocations ─► pathgraph.Build ─► prim_kruskal.Compute
//
// and packages the outcome as a Report. It is the only layer that logs;
// the algorithm packages below it stay silent and return errors.
//
// Failure policy:
//   - An invalid grid aborts the run (errors wrap gridgraph.ErrInvalidGrid).
//   - Per-pair search failures stay in Report.Graph.Failures unless
//     Config.Strict is set.
//   - A partial spanning tree is data. For every unreached key location the
//     report carries a Breach: the fewest wall cells separating it from the
//     root. With Config.RequireConnected the report is still returned, paired
//     with prim_kruskal.ErrDisconnected.
//
// Report.Summary converts a report into the JSON shape shared by the HTTP
// API and the CLI.
package explorer
