package ticket

import "testing"

func TestCombined(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "lowercases and joins",
			parts: []string{"CRDB Outage", "Shard DOWN"},
			want:  "crdb outage shard down",
		},
		{
			name:  "empty parts preserved as separators",
			parts: []string{"", "Timeout"},
			want:  " timeout",
		},
		{
			name:  "no parts",
			parts: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combined(tt.parts...); got != tt.want {
				t.Errorf("Combined() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "empty", value: "", want: true},
		{name: "whitespace", value: "   ", want: true},
		{name: "nan artifact", value: "NaN", want: true},
		{name: "none artifact", value: "None", want: true},
		{name: "not applicable", value: "n/a", want: true},
		{name: "real content", value: "restart the proxy", want: false},
		{name: "content with padding", value: "  restart  ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.value); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLabelText(t *testing.T) {
	got := LabelText([]string{"Enterprise", "RCA"})
	if got != "enterprise rca" {
		t.Errorf("LabelText() = %q, want %q", got, "enterprise rca")
	}
}
