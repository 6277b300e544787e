package keymap

// Binding contexts.
const (
	ContextGlobal = "global"
	ContextTracks = "tracks"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings. ctrl+c always quits and is handled
// before any popup sees the key.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionStop, []string{"s"}, "Stop preview", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	{ActionMoveUp, []string{"up", "k"}, "Move up", ContextTracks},
	{ActionMoveDown, []string{"down", "j"}, "Move down", ContextTracks},
	{ActionJumpStart, []string{"home", "g"}, "First track", ContextTracks},
	{ActionJumpEnd, []string{"end", "G"}, "Last track", ContextTracks},
	{ActionPlayPause, []string{"enter", " "}, "Play/stop preview", ContextTracks},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
