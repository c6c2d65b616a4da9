package rdkit

// Options configures the parser.
type Options struct {
	// Verbose lets RDKit write its own diagnostics to stderr.
	Verbose bool
}
