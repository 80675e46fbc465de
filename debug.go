package pinchzoom

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger prefixed for this package, writing to w at the
// given level. Pass it to WithLogger.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "pinchzoom",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logChange writes a transition at debug level. Continuous drag and pinch
// updates only log when the scale settles outside its bounds, which is the
// interesting case while debugging magnification.
func (c *Controller) logChange(ch Change) {
	if c.logger == nil {
		return
	}
	if ch.Kind.Continuous() && ch.After.Scale >= c.cfg.MinScale && ch.After.Scale <= c.cfg.MaxScale {
		return
	}
	c.logger.Debug(ch.Kind.String(),
		"session", c.session,
		"scale", ch.After.Scale,
		"offset_x", ch.After.Offset.X,
		"offset_y", ch.After.Offset.Y,
		"highlighted", ch.After.Highlighted,
		"drawer", ch.After.DrawerOpen,
		"page", ch.After.CurrentPageID,
	)
}
