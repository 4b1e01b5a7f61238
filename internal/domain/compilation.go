package domain

// Compilation is an admin-curated, ordered selection of events.
type Compilation struct {
	ID       string
	Title    string
	Pinned   bool
	EventIDs []string
}

type CompilationView struct {
	Compilation
	Events []*EventView
}

type CreateCompilationInput struct {
	Title  string
	Pinned *bool
	Events []string
}

// CompilationPatch leaves nil fields unchanged. A non-nil empty Events
// clears the selection.
type CompilationPatch struct {
	Title  *string
	Pinned *bool
	Events []string
}

const MaxCompilationTitle = 50
