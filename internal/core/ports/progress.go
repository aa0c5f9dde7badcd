package ports

// Progress receives the progress of a long running pass.
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	// Start announces a pass of total units described by label.
	Start(total int, label string)
	// Add reports n more completed units. It is safe for concurrent use.
	Add(n int)
	// Finish signals that the pass is complete.
	Finish()
}
