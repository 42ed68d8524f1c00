package views

// Operation is an action offered by the menu
type Operation int

const (
	OpScan Operation = iota
	OpUnobfuscate
	OpObfuscate
	OpAnalyze
	OpExport
	OpOrganizeDialogue
	OpIndex
	OpLookup
)

type operationInfo struct {
	title       string
	description string
	fields      []string
}

var operations = map[Operation]operationInfo{
	OpScan: {
		title:       "Scan metadata",
		description: "Build the media ID to debug name mapping from exported JSON",
		fields:      []string{"Metadata directory"},
	},
	OpUnobfuscate: {
		title:       "Unobfuscate",
		description: "Copy assets from media IDs to debug names",
		fields:      []string{"Media directory", "Output directory"},
	},
	OpObfuscate: {
		title:       "Obfuscate",
		description: "Copy assets from debug names back to media IDs",
		fields:      []string{"Named asset directory", "Output directory"},
	},
	OpAnalyze: {
		title:       "Analyze duplicates",
		description: "Group assets by category and find repeated filenames",
		fields:      []string{"Asset directory"},
	},
	OpExport: {
		title:       "Export report",
		description: "Write one CSV per category from the last analysis",
		fields:      []string{"Output directory"},
	},
	OpOrganizeDialogue: {
		title:       "Organize dialogue",
		description: "Sort dialogue metadata into its object path folders",
		fields:      []string{"Metadata directory", "Output directory"},
	},
	OpIndex: {
		title:       "Rebuild index",
		description: "Load the saved mapping into the lookup index",
	},
	OpLookup: {
		title:       "Lookup",
		description: "Search the index by media ID or debug name",
	},
}

// MenuOrder is the order operations are listed in
var MenuOrder = []Operation{
	OpScan,
	OpUnobfuscate,
	OpObfuscate,
	OpAnalyze,
	OpExport,
	OpOrganizeDialogue,
	OpIndex,
	OpLookup,
}

// Title returns the menu label
func (o Operation) Title() string {
	return operations[o].title
}

// Description returns the one-line menu description
func (o Operation) Description() string {
	return operations[o].description
}

// Fields returns the labels of the directories the operation asks for
func (o Operation) Fields() []string {
	return operations[o].fields
}
