package editor

// Config configures the editor Model. Zero values are usable: an empty
// KeyMap falls back to DefaultKeyMap, TabWidth to 4.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Shown in Style.Placeholder while the document is empty. Never part of
	// the document.
	Placeholder string

	// ReadOnly keeps cursor movement but drops every mutation.
	ReadOnly bool

	TabWidth int
	KeyMap   KeyMap
	Style    Style

	// Forwarded to buffer.Options.
	HistoryLimit int
}
