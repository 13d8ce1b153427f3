// Package cli implements the command-line interface for festcal.
//
// The cli package provides the Cobra-based CLI that wires configuration,
// scraping (or snapshot replay), the parse/normalize pipeline, and the CSV
// and calendar exporters together, and prints a run summary as text or JSON.
package cli
