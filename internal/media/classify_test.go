package media

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		seconds     int
		want        bool
	}{
		{"short by duration", "Amanecer en la Ruta 40", "", 45, true},
		{"exactly sixty seconds", "Cruce del río", "", 60, true},
		{"just over a minute", "Cruce del río", "", 61, false},
		{"marker in title", "Truco de campamento #shorts", "", 300, true},
		{"marker in description", "Truco de campamento", "mira el video completo #shorts", 300, true},
		{"marker is case-insensitive", "Truco de campamento #ShOrTs", "", 300, true},
		{"long form", "Construyendo mi casa rural", "parte 1: cimientos", 1335, false},
		{"zero duration counts as short", "Video borrado", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.title, tt.description, tt.seconds); got != tt.want {
				t.Errorf("Classify(%q, %q, %d) = %v, want %v", tt.title, tt.description, tt.seconds, got, tt.want)
			}
		})
	}
}
