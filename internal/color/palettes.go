package color

// --- PREDEFINED COLORS ---

// Basic Colors (using Color struct)
var (
	// Standard ANSI colors
	ColorBlack   = NewANSI(0).WithName("black")
	ColorRed     = NewANSI(1).WithName("red")
	ColorGreen   = NewANSI(2).WithName("green")
	ColorYellow  = NewANSI(3).WithName("yellow")
	ColorBlue    = NewANSI(4).WithName("blue")
	ColorMagenta = NewANSI(5).WithName("magenta")
	ColorCyan    = NewANSI(6).WithName("cyan")
	ColorWhite   = NewANSI(7).WithName("white")

	// Bright ANSI colors
	ColorBrightBlack   = NewANSI(8).WithName("bright_black")
	ColorBrightRed     = NewANSI(9).WithName("bright_red")
	ColorBrightGreen   = NewANSI(10).WithName("bright_green")
	ColorBrightYellow  = NewANSI(11).WithName("bright_yellow")
	ColorBrightBlue    = NewANSI(12).WithName("bright_blue")
	ColorBrightMagenta = NewANSI(13).WithName("bright_magenta")
	ColorBrightCyan    = NewANSI(14).WithName("bright_cyan")
	ColorBrightWhite   = NewANSI(15).WithName("bright_white")

	// Semantic colors
	ColorSuccess = ColorBrightGreen.WithName("success")
	ColorError   = ColorBrightRed.WithName("error")
	ColorWarning = ColorBrightYellow.WithName("warning")
	ColorInfo    = ColorBrightCyan.WithName("info")
	ColorDebug   = ColorBrightMagenta.WithName("debug")
)

// Material Design Colors, used by MaterialTheme below.
var (
	MaterialRed    = NewHex("#F44336").WithName("material_red")
	MaterialPurple = NewHex("#9C27B0").WithName("material_purple")
	MaterialBlue   = NewHex("#2196F3").WithName("material_blue")
	MaterialCyan   = NewHex("#00BCD4").WithName("material_cyan")
	MaterialTeal   = NewHex("#009688").WithName("material_teal")
	MaterialGreen  = NewHex("#4CAF50").WithName("material_green")
	MaterialLime   = NewHex("#CDDC39").WithName("material_lime")
	MaterialYellow = NewHex("#FFEB3B").WithName("material_yellow")
	MaterialAmber  = NewHex("#FFC107").WithName("material_amber")
	MaterialOrange = NewHex("#FF9800").WithName("material_orange")
	MaterialPink   = NewHex("#E91E63").WithName("material_pink")
	MaterialIndigo = NewHex("#3F51B5").WithName("material_indigo")
)

// Modern flat badge colors. The console writer uses these for the trace
// and fatal/panic levels, which sit outside the active theme.
var (
	ModernGray   = NewHex("#6B7280").WithName("modern_gray")
	ModernSlate  = NewHex("#475569").WithName("modern_slate")
	ModernRed    = NewHex("#EF4444").WithName("modern_red")
	ModernGreen  = NewHex("#22C55E").WithName("modern_green")
	ModernYellow = NewHex("#EAB308").WithName("modern_yellow")
	ModernOrange = NewHex("#F97316").WithName("modern_orange")
	ModernPurple = NewHex("#A855F7").WithName("modern_purple")
	ModernBlue   = NewHex("#3B82F6").WithName("modern_blue")
	ModernCyan   = NewHex("#06B6D4").WithName("modern_cyan")
)

// ColorTheme represents a theme with semantic colors for logging.
type ColorTheme struct {
	Name      string
	Success   Color
	Error     Color
	Warning   Color
	Info      Color
	Debug     Color
	Primary   Color
	Secondary Color
	Accent    Color
}

// DefaultTheme is the default color theme.
var DefaultTheme = ColorTheme{
	Name:      "default",
	Success:   ColorSuccess,
	Error:     ColorError,
	Warning:   ColorWarning,
	Info:      ColorInfo,
	Debug:     ColorDebug,
	Primary:   ColorBlue,
	Secondary: ColorCyan,
	Accent:    MaterialPink,
}

// MaterialTheme is the Material Design color theme.
var MaterialTheme = ColorTheme{
	Name:      "material",
	Success:   MaterialGreen,
	Error:     MaterialRed,
	Warning:   MaterialAmber,
	Info:      MaterialBlue,
	Debug:     MaterialPurple,
	Primary:   MaterialBlue,
	Secondary: MaterialCyan,
	Accent:    MaterialPink,
}
