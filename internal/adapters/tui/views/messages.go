package views

// SwitchToMenuMsg returns to the operation menu
type SwitchToMenuMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SelectOperationMsg is sent when an operation is chosen from the menu
type SelectOperationMsg struct {
	Op Operation
}

// StartRunMsg asks the app to run an operation with the form values
type StartRunMsg struct {
	Op     Operation
	Values []string
}

// LogLinesMsg carries log lines produced while an operation runs
type LogLinesMsg struct {
	Lines []string
}

// RunFinishedMsg reports the outcome of an operation
type RunFinishedMsg struct {
	Op       Operation
	Message  string
	Details  []string // failures or notable entries, shown under the summary
	ErrorLog string   // path of the written error log, if any
	Err      error
}

// CancelRunMsg asks the app to cancel the running operation
type CancelRunMsg struct{}

// OpenEditorMsg asks the app to open a file in the external editor
type OpenEditorMsg struct {
	Path string
}
