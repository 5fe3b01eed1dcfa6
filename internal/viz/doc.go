// Package viz holds the terminal styling shared by the rfcalc commands
// and the material explorer.
//
//   - [Table], [KeyValue]: aligned text output
//   - [SparklineChart]: one-line bar chart of a sweep; NaN samples are gaps
//   - [FormatSI], [ParseSI]: engineering prefixes ("2.4 GHz", "2.087 µm")
//   - [Theme]: colour schemes for the explorer
package viz
