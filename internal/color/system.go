package color

// ThemeSystem groups a theme's colors under namespaced access, e.g.
// color.Material.Purple for the debug-level badge color.
type ThemeSystem struct {
	Black   Color
	Red     Color
	Green   Color
	Yellow  Color
	Blue    Color
	Magenta Color
	Cyan    Color
	White   Color

	Purple Color
	Orange Color
	Pink   Color
	Teal   Color
	Lime   Color
	Indigo Color
}

// Material is the Material Design theme, namespaced by color role.
var Material *ThemeSystem

func init() {
	Material = &ThemeSystem{
		Black:   NewHex("#424242").WithName("material_black"),
		Red:     MaterialRed,
		Green:   MaterialGreen,
		Yellow:  MaterialYellow,
		Blue:    MaterialBlue,
		Magenta: MaterialPurple,
		Cyan:    MaterialCyan,
		White:   NewHex("#FFFFFF").WithName("material_white"),
		Purple:  MaterialPurple,
		Orange:  MaterialOrange,
		Pink:    MaterialPink,
		Teal:    MaterialTeal,
		Lime:    MaterialLime,
		Indigo:  MaterialIndigo,
	}
}
