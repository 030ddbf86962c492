package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSummaryResponse(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		wantSummary     string
		wantDescription string
	}{
		{
			name: "well-formed response",
			input: "SUMMARY: FedEx - OVC corruption causing replication failure\n\nDESCRIPTION:\n## Problem Statement\nReplication is broken.\n\n## Impact\n- data at risk",
			wantSummary:     "FedEx - OVC corruption causing replication failure",
			wantDescription: "## Problem Statement\nReplication is broken.\n\n## Impact\n- data at risk",
		},
		{
			name:            "missing summary marker falls back",
			input:           "DESCRIPTION:\nsome description text",
			wantSummary:     "Unable to parse summary",
			wantDescription: "some description text",
		},
		{
			name:            "no markers at all uses full text as description",
			input:           "the model ignored the format entirely",
			wantSummary:     "Unable to parse summary",
			wantDescription: "the model ignored the format entirely",
		},
		{
			name:            "text before the markers is ignored",
			input:           "Here is my analysis:\n\nSUMMARY: node_mgr crash after upgrade\n\nDESCRIPTION:\n## Problem Statement\nCrash loop.",
			wantSummary:     "node_mgr crash after upgrade",
			wantDescription: "## Problem Statement\nCrash loop.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, description := parseSummaryResponse(tt.input)
			assert.Equal(t, tt.wantSummary, summary)
			assert.Equal(t, tt.wantDescription, description)
		})
	}
}

func TestParseSummaryResponseIdempotent(t *testing.T) {
	input := "SUMMARY: same issue\n\nDESCRIPTION:\nsame text"
	s1, d1 := parseSummaryResponse(input)
	s2, d2 := parseSummaryResponse(input)
	assert.Equal(t, s1, s2)
	assert.Equal(t, d1, d2)
}
