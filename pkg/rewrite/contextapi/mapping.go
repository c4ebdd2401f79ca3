package contextapi

// Mapping maps a legacy store field to its dotted path on the context API.
type Mapping struct {
	Key    string // property on the old store state
	Target string // namespace.member on the replacement API
}

// stateToAPI is the full symbol mapping table. Order is replacement order.
// The table is exhaustive relative to what the passes rewrite: a legacy key
// missing here is left untouched and shows up in the residual-usage warning.
var stateToAPI = []Mapping{
	// Files API
	{"openFiles", "files.openFiles"},
	{"activeFilePath", "files.activeFilePath"},
	{"setActiveFile", "files.setActiveFile"},
	{"closeFile", "files.closeFile"},
	{"updateFileContent", "files.updateContent"},
	{"markFileDirty", "files.markDirty"},
	{"setOpenFiles", "files.openFile"}, // may need manual adjustment

	// Workspace API
	{"workingDirectory", "workspace.workingDirectory"},
	{"expandedFolderPaths", "workspace.expandedFolderPaths"},
	{"setWorkingDirectory", "workspace.setWorkingDirectory"},
	{"toggleExpandedFolder", "workspace.toggleExpandedFolder"},

	// UI API
	{"showTerminalPanel", "ui.showTerminalPanel"},
	{"setShowTerminalPanel", "ui.toggleTerminal"}, // signature changed
	{"editorAppearanceConfig", "ui.editorAppearanceConfig"},
	{"setEditorAppearanceConfig", "ui.updateEditorConfig"},

	// Chat API
	{"editorChatMessages", "chat.messages"},
	{"setEditorChatMessages", "chat.addMessage"}, // may need manual adjustment
}

// Mappings returns a copy of the symbol mapping table in table order.
func Mappings() []Mapping {
	out := make([]Mapping, len(stateToAPI))
	copy(out, stateToAPI)
	return out
}
