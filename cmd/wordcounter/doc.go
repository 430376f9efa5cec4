// Package main hosts the wordcounter CLI entrypoint and command graph.
//
// Invoked without a subcommand, wordcounter asks for an input file and an
// output folder, counts the words in the file, and writes index.html into the
// folder. The history and config subcommands inspect past runs and scaffold
// configuration. The counting itself lives in internal/pipeline; this package
// only gathers answers, wires config and logging, and renders terminal
// output.
package main
