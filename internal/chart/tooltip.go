package chart

// Default tooltip offset from the pointer.
const (
	TooltipOffsetX = 10
	TooltipOffsetY = -25
)

// Tooltip is the single hover overlay of a mount.
type Tooltip struct {
	visible bool
	at      Point
	text    string
}

func (t *Tooltip) Visible() bool   { return t.visible }
func (t *Tooltip) Position() Point { return t.at }
func (t *Tooltip) Text() string    { return t.text }

func (t *Tooltip) show(at Point, text string) {
	t.visible = true
	t.at = at
	t.text = text
}

func (t *Tooltip) hide() {
	t.visible = false
}

// TooltipController moves a mount's tooltip in response to arc pointer
// events.
type TooltipController struct {
	tip    *Tooltip
	offset Point
}

// Move shows value next to the container-space pointer position.
func (c TooltipController) Move(pointer Point, value float64) {
	c.tip.show(Point{X: pointer.X + c.offset.X, Y: pointer.Y + c.offset.Y}, FormatValue(value))
}

// Out hides the tooltip.
func (c TooltipController) Out() {
	c.tip.hide()
}
