// Package memory provides in-memory implementations of driven port interfaces.
// They back the tests and the --no-history mode, where nothing should touch disk.
package memory
