package main

// Exit codes returned by bt commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config file)
	ExitDataError   = 3 // Data error (malformed .bib or .tex input)
	ExitNotFound    = 4 // Requested item not found (e.g. no DOI in a PDF)
)
