package xlsx

import "testing"

func TestStyleWithDefaults(t *testing.T) {
	got := Style{Font: "Meiryo", Border: "#00ff00"}.WithDefaults()
	want := Style{
		Font:             "Meiryo",
		HeaderText:       DefaultHeaderText,
		HeaderBackground: DefaultHeaderBackground,
		BodyText:         DefaultBodyText,
		BodyBackground:   DefaultBodyBackground,
		Border:           "00FF00",
	}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name    string
		style   Style
		wantErr bool
	}{
		{"zero", Style{}, false},
		{"defaults", DefaultStyle(), false},
		{"hash colors", Style{Border: "#5b9bd5"}, false},
		{"bad color", Style{BodyText: "black"}, true},
		{"bad font", Style{Font: "\x00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.style.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
