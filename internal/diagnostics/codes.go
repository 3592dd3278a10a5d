package diagnostics

// Preprocessing diagnostics.
const (
	ErrPreprocessing          = "P0000"
	ErrUnterminatedString     = "P0001"
	ErrUnterminatedChar       = "P0002"
	ErrEmptyChar              = "P0003"
	ErrUnterminatedComment    = "P0004"
	ErrUnterminatedHeaderName = "P0005"
	ErrStrayCharacter         = "P0006"
	ErrInclude                = "P0007"
)

// File diagnostics.
const (
	ErrUnreadableFile = "F0001"
)

// Command line diagnostics.
const (
	WarnIgnoredOption = "W0001"
)
