package catalog

// ExitCodeInvalidCatalog is the process exit code when the catalog cannot be loaded.
const ExitCodeInvalidCatalog = 3

// LoadError reports a catalog that failed to decode or validate.
type LoadError struct {
	Reason string
}

func (e LoadError) Error() string { return "invalid catalog: " + e.Reason }

// ExitCode lets the entry point map a broken catalog to its own exit status.
func (e LoadError) ExitCode() int { return ExitCodeInvalidCatalog }
