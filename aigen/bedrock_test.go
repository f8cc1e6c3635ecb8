package aigen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no fence",
			input: `[{"step": 1}]`,
			want:  `[{"step": 1}]`,
		},
		{
			name:  "json fence",
			input: "```json\n[{\"step\": 1}]\n```",
			want:  `[{"step": 1}]`,
		},
		{
			name:  "bare fence",
			input: "```\n[{\"step\": 1}]\n```",
			want:  `[{"step": 1}]`,
		},
		{
			name:  "fence without closing",
			input: "```json\n[{\"step\": 1}]",
			want:  `[{"step": 1}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.input))
		})
	}
}
