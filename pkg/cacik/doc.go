// Package cacik holds the model shared by the step engine: lifecycle hooks,
// scenario and step metadata, data tables and run results.
package cacik
