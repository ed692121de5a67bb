package modname

import "testing"

func TestParse(t *testing.T) {
	valid := []string{
		"Main",
		"Json.Decode",
		"Html.Attributes.Extra",
		"Grid2D",
		"Internal_Thing",
	}
	for _, input := range valid {
		if _, err := Parse(input); err != nil {
			t.Errorf("Parse(%q) error: %v", input, err)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"main",
		"Json..Decode",
		".Main",
		"Main.",
		"Json.decode",
		"My Module",
		"Module-Name",
	}
	for _, input := range invalid {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}
