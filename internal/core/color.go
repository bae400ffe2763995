package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a terminal style per chapter theme,
// so games pick a role rather than a palette entry.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBorder
	ColorHUD
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorObstacle
	ColorFrozen
	ColorImmune
	ColorBanner
	ColorDanger
	ColorMuted
)

// String returns the role name, used as a lookup key by themes.
func (c Color) String() string {
	switch c {
	case ColorBorder:
		return "border"
	case ColorHUD:
		return "hud"
	case ColorSnakeHead:
		return "head"
	case ColorSnakeBody:
		return "body"
	case ColorFood:
		return "food"
	case ColorObstacle:
		return "obstacle"
	case ColorFrozen:
		return "frozen"
	case ColorImmune:
		return "immune"
	case ColorBanner:
		return "banner"
	case ColorDanger:
		return "danger"
	case ColorMuted:
		return "muted"
	default:
		return "default"
	}
}
