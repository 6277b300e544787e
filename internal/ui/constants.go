package ui

// Layout constants shared by the panels.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 1

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the space for a panel title and its blank line.
	HeaderHeight = 2

	// PanelOverhead is border plus header.
	PanelOverhead = BorderHeight + HeaderHeight

	// MinWidth is the narrowest terminal the layout is drawn for.
	MinWidth = 30
)
