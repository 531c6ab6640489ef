package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Order status colors
	StatusPending   = lipgloss.Color("#9CA3AF") // Gray
	StatusPreparing = lipgloss.Color("#F59E0B") // Amber
	StatusReady     = lipgloss.Color("#10B981") // Green
	StatusDelivered = lipgloss.Color("#60A5FA") // Blue
	StatusCancelled = lipgloss.Color("#F87171") // Red

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Tab styles
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Status badge
	StatusBadge = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)

	// List rows
	RowSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SurfaceColor)

	RowNormal = lipgloss.NewStyle().
			Foreground(TextColor)

	RowUnavailable = lipgloss.NewStyle().
			Foreground(MutedColor).
			Strikethrough(true)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Modal (form, quick order, confirm)
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	FormLabel = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(16)

	FormLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(PrimaryColor).
				Width(16)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Status line
	StatusInfo = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusError = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)

	StatusSuccess = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// StatusColor maps an order status name to its badge color. Unknown
// statuses render muted.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "Pending":
		return StatusPending
	case "Preparing":
		return StatusPreparing
	case "Ready":
		return StatusReady
	case "Delivered":
		return StatusDelivered
	case "Cancelled":
		return StatusCancelled
	default:
		return MutedColor
	}
}

// RenderStatusBadge renders a colored badge for an order status.
func RenderStatusBadge(status string) string {
	return StatusBadge.
		Foreground(TextColor).
		Background(StatusColor(status)).
		Render(status)
}
