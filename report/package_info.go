// Package report renders framework.Results for people and tools.
//
// ConsoleTestLogger and Handler receive results while a run is in progress;
// WriteHTML, HTMLSink, TableSummary and JSONDocument render a finished run.
// StartServer puts a Handler on a local port.
package report
