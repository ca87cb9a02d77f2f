package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnippetHash_Deterministic(t *testing.T) {
	h1 := SnippetHash("storage_encrypted = true")
	h2 := SnippetHash("storage_encrypted = true")

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 12)

	// Different content, different hash.
	assert.NotEqual(t, h1, SnippetHash("storage_encrypted = false"))
}

func TestMakeAnchor_SingleLine(t *testing.T) {
	a := MakeAnchor("infra/main.tf", 12, 12, "storage_encrypted = true")

	assert.Equal(t, "infra/main.tf", a.Path)
	assert.Equal(t, 12, a.LineStart)
	assert.Equal(t, 12, a.LineEnd)
	assert.Equal(t, "infra/main.tf:12", a.Display)
	assert.Equal(t, SnippetHash("storage_encrypted = true"), a.SnippetHash)
	assert.False(t, a.SnippetHashVerified, "MakeAnchor alone never marks an anchor verified")
}

func TestMakeAnchor_Range(t *testing.T) {
	a := MakeAnchor("src/app.py", 3, 7, "def main():")
	assert.Equal(t, "src/app.py:3-7", a.Display)
}

func TestParseCitation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Citation
		ok    bool
	}{
		{"single line", "infra/main.tf:12", Citation{"infra/main.tf", 12, 12}, true},
		{"line range", "src/app.py:3-7", Citation{"src/app.py", 3, 7}, true},
		{"surrounding space", "  README.md:1  ", Citation{"README.md", 1, 1}, true},
		{"no line number", "infra/main.tf", Citation{}, false},
		{"zero line", "infra/main.tf:0", Citation{}, false},
		{"negative-looking", "infra/main.tf:-3", Citation{}, false},
		{"trailing garbage", "infra/main.tf:12 (see config)", Citation{}, false},
		{"double colon", "win:path:12", Citation{}, false},
		{"empty", "", Citation{}, false},
		{"prose", "the config file", Citation{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCitation(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
