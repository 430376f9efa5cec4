// Package pipeline drives one word counting run from input file to report.
//
// A run opens the input, counts its words, drains the distinct words into
// ascending order alongside their counts, writes index.html into the output
// folder, and finally hands a summary to an optional history recorder. Input
// and report failures end the run; a recorder failure is only logged because
// the report already exists by then.
package pipeline
