package llm

import (
	"fmt"
	"strings"
)

// buildIncidentPrompt assembles the analysis prompt for one ticket
// conversation. The model is asked for a one-line technical summary plus a
// structured incident description, returned behind SUMMARY:/DESCRIPTION:
// markers so the response parser stays trivial.
func buildIncidentPrompt(req SummaryRequest) string {
	customer := req.Customer
	if customer == "" {
		customer = "Unknown"
	}
	product := req.Product
	if product == "" {
		product = "the product"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are analyzing a support ticket to create an engineering bug report for the %s team.\n\n", product)
	fmt.Fprintf(&b, "**Ticket %s**\n**Customer:** %s\n**Product:** %s\n\n", req.TicketID, customer, product)
	fmt.Fprintf(&b, "**Full Ticket Conversation:**\n```\n%s\n```\n\n", req.Conversation)

	b.WriteString(`---

**Your Task:**

Analyze this conversation and generate:

1. **Summary (one-line title)**
   - Concise, technical summary of the ACTUAL issue (not the original ticket title)
   - Format: "[Customer] - [Component/ROOT CAUSE] [specific technical issue] causing [PRIMARY IMPACT]"
   - Focus on ROOT CAUSE and PRIMARY IMPACT, not secondary symptoms
   - If the ticket evolved, describe the evolved issue

2. **Structured Description**

Use this format with markdown headers (##):

## Problem Statement
[2-3 sentence overview of the issue and its impact]

## Error Observed
[Specific error messages, symptoms, or anomalies - use code blocks for logs]

## Impact
[Bullet points of impact: service state, data risk, customer operations]

## Root Cause Analysis
[If known: technical explanation with causal chain ROOT CAUSE -> PRIMARY EFFECT -> SECONDARY CONSEQUENCES]
[If unknown: "Investigation in progress"]

## Reproduction Steps
[Numbered steps with exact commands and outputs if provided; skip the section otherwise]

## Workaround Applied
[Applied/proposed workaround with commands, or "No confirmed workaround available"]

## Technical Details
[Versions, cluster/node IDs, affected components - use code blocks for data]

## Related Information
[Related tickets, threads, similar issues mentioned]

## Ask From R&D
[Numbered list of investigation/fix steps needed]

---

**Important Guidelines:**
- Extract the narrative from the conversation (Problem -> Investigation -> Solution)
- Use technical precision: exact error messages, version numbers, component names
- Use code blocks for logs, commands, output
- Be concise; facts for R&D, not the support conversation flow
- If the ticket is still under investigation, say so explicitly

**Output Format:**

Return your response in this exact format:

SUMMARY: [one-line summary here]

DESCRIPTION:
[structured description here]
`)

	return b.String()
}
