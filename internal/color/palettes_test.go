package color

import "testing"

func TestSemanticColors(t *testing.T) {
	if ColorSuccess.Name != "success" {
		t.Errorf("ColorSuccess name = %s, want success", ColorSuccess.Name)
	}
	if ColorError.Name != "error" {
		t.Errorf("ColorError name = %s, want error", ColorError.Name)
	}
}

func TestMaterialColors(t *testing.T) {
	colors := map[string]Color{
		"MaterialRed":    MaterialRed,
		"MaterialGreen":  MaterialGreen,
		"MaterialBlue":   MaterialBlue,
		"MaterialPurple": MaterialPurple,
		"MaterialAmber":  MaterialAmber,
	}
	for name, c := range colors {
		if c.Hex == "" {
			t.Errorf("%s should have a hex value", name)
		}
	}
}

func TestModernColors(t *testing.T) {
	colors := map[string]Color{
		"ModernGray":   ModernGray,
		"ModernSlate":  ModernSlate,
		"ModernRed":    ModernRed,
		"ModernGreen":  ModernGreen,
		"ModernYellow": ModernYellow,
		"ModernOrange": ModernOrange,
		"ModernPurple": ModernPurple,
		"ModernBlue":   ModernBlue,
		"ModernCyan":   ModernCyan,
	}
	for name, c := range colors {
		if c.Hex == "" {
			t.Errorf("%s should have a hex value", name)
		}
	}
}

func TestDefaultTheme(t *testing.T) {
	if DefaultTheme.Name != "default" {
		t.Errorf("DefaultTheme.Name = %s, want default", DefaultTheme.Name)
	}
	if DefaultTheme.Success != ColorSuccess {
		t.Error("DefaultTheme.Success should be ColorSuccess")
	}
}

func TestMaterialTheme(t *testing.T) {
	if MaterialTheme.Name != "material" {
		t.Errorf("MaterialTheme.Name = %s, want material", MaterialTheme.Name)
	}
	if MaterialTheme.Error != MaterialRed {
		t.Error("MaterialTheme.Error should be MaterialRed")
	}
	if MaterialTheme.Debug != MaterialPurple {
		t.Error("MaterialTheme.Debug should be MaterialPurple")
	}
}

func TestMaterialThemeSystem(t *testing.T) {
	if Material == nil {
		t.Fatal("Material theme system should be initialized")
	}
	if Material.Purple != MaterialPurple {
		t.Error("Material.Purple should be MaterialPurple")
	}
	if Material.Red != MaterialRed {
		t.Error("Material.Red should be MaterialRed")
	}
}
