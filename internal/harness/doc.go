// Package harness runs conformance scenarios against the specimen CLI.
//
// A scenario is a YAML file naming the CLI arguments to pass and the
// expected exit code. The harness executes the command in-process with
// captured stdout and compares the output byte-for-byte against a golden
// file. Golden files are the source of truth for the external contract:
// stdout content and exit code must never drift between runs or releases.
package harness
