// Package report ingests free-form benchmark run logs and renders a
// cross-engine markdown comparison table.
//
// What
//
//   - ParseLog: scan a log for strategy/mode marker lines and fixed-width
//     data rows, collecting median timings keyed by (instance, strategy,
//     mode). Native engine logs mark sections with "Strategy: <name>";
//     other engines prepend a mode: "Mode: <m> / Strategy: <name>".
//     Header and separator rows are skipped; malformed data rows are
//     ignored, never fatal.
//   - Markdown: group the collected results per strategy and emit one
//     markdown table each, instances as rows, engine modes as columns in a
//     canonical order, "-" for gaps.
//
// The instance name column is the join key benchmark instances ship with;
// this package never interprets it beyond equality.
package report
