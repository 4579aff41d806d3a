package app

// ResultMsg carries the computed operating points back into the UI loop.
type ResultMsg struct {
	Result
}

// FatalMsg reports a validation failure that ends the current run.
type FatalMsg struct {
	Err error
}
