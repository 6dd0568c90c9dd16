// Package app encapsulates the application's dependencies, configuration,
// and lifecycle: it builds the logger, loads graph documents into a catalog,
// runs the compiler, and writes the resulting script to the output writer.
package app
