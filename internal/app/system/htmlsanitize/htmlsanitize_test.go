package htmlsanitize

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Need help with groceries this weekend",
			want:  "Need help with groceries this weekend",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "script tag stripped with its payload",
			input: "hello <script>alert('xss')</script>world",
			want:  "hello world",
		},
		{
			name:  "formatting tags stripped but text kept",
			input: "<b>Urgent:</b> wheelchair ramp <i>repair</i>",
			want:  "Urgent: wheelchair ramp repair",
		},
		{
			name:  "link markup stripped keeping anchor text",
			input: `Donate at <a href="https://evil.example">our page</a> please`,
			want:  "Donate at our page please",
		},
		{
			name:  "event handler attribute gone with its element",
			input: `<img src=x onerror="steal()">Food drive`,
			want:  "Food drive",
		},
		{
			name:  "bare comparison text survives",
			input: "Need 5 < 10 volunteers, more > fewer",
			want:  "Need 5 < 10 volunteers, more > fewer",
		},
		{
			name:  "newlines preserved",
			input: "Line one\nLine two",
			want:  "Line one\nLine two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  School supplies drive  ", "School supplies drive"},
		{" <b>Winter</b> coats ", "Winter coats"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeAndTrim(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeAndTrim(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
