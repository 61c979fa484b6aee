package loader

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"rooms":[]}`,
			want: `{"rooms":[]}`,
		},
		{
			name: "surrounding prose",
			raw:  "Here is your world:\n{\"rooms\":[]}\nEnjoy!",
			want: `{"rooms":[]}`,
		},
		{
			name: "markdown fence",
			raw:  "```json\n{\"rooms\":[{\"roomName\":\"A\"}]}\n```",
			want: `{"rooms":[{"roomName":"A"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractJSON(tc.raw)
			if err != nil {
				t.Fatalf("ExtractJSON failed: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("ExtractJSON = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	for _, raw := range []string{"", "no braces here", "}{"} {
		if _, err := ExtractJSON(raw); err == nil {
			t.Errorf("ExtractJSON(%q) should fail", raw)
		}
	}
}
