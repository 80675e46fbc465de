package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/pinchzoom"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// writeResultText prints one line per snapshot followed by any warnings.
func writeResultText(w io.Writer, res pinchzoom.ScriptResult) error {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Snapshots"))
	b.WriteByte('\n')
	for _, s := range res.Snapshots {
		st := s.State
		flags := []string{}
		if st.Highlighted {
			flags = append(flags, "highlighted")
		}
		if st.DrawerOpen {
			flags = append(flags, "drawer")
		}
		fmt.Fprintf(&b, "  %-16s %s scale %s offset (%s, %s) page %s %s\n",
			s.Label,
			styleDim.Render(fmt.Sprintf("#%d", s.Frame)),
			styleNumber.Render(fmt.Sprintf("%.2f", st.Scale)),
			styleNumber.Render(fmt.Sprintf("%.1f", st.Offset.X)),
			styleNumber.Render(fmt.Sprintf("%.1f", st.Offset.Y)),
			styleNumber.Render(fmt.Sprintf("%d", st.CurrentPageID)),
			styleDim.Render(strings.Join(flags, " ")),
		)
	}
	for _, warn := range res.Warnings {
		b.WriteString(styleWarning.Render("! " + warn))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s\n", styleDim.Render(fmt.Sprintf("%d frames", res.Frames)))
	_, err := io.WriteString(w, b.String())
	return err
}
