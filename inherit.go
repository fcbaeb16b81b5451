package tcss

// Inherit resolves the inherited properties of child against its parent's
// resolved style.
//
// Color, FontStyle and TextAlign are inherited: when child leaves one
// absent it takes the parent's value. A Color or Background that holds
// InheritColor is replaced by the parent's value too, which may be absent.
// All other properties of child are returned unchanged.
func Inherit(parent, child Style) Style {
	child.Color = inheritColor(parent.Color, child.Color, true)
	child.Background = inheritColor(parent.Background, child.Background, false)
	child.FontStyle = child.FontStyle.Or(parent.FontStyle)
	child.TextAlign = child.TextAlign.Or(parent.TextAlign)
	return child
}

// inheritColor resolves one color field. whenAbsent selects whether an
// undeclared field inherits, which is CSS behavior for color but not for
// background.
func inheritColor(parent, child Option[Color], whenAbsent bool) Option[Color] {
	c, ok := child.Get()
	switch {
	case !ok && whenAbsent:
		return parent
	case ok && c.IsInherit():
		return parent
	default:
		return child
	}
}
