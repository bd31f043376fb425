package types

// Reasoning facets describe which route produced a response. The joined
// label is part of the observable contract: it must be reproducible from
// the same inputs so tests and UIs can key off it.

// RetrievalFacet tells whether the knowledge base contributed to the answer
type RetrievalFacet string

const (
	RetrievalRAG       RetrievalFacet = "rag"
	RetrievalNoKBMatch RetrievalFacet = "no_kb_match"
)

// GenerationFacet tells whether a remote text backend composed the answer
type GenerationFacet string

const (
	GenerationRemoteLLM             GenerationFacet = "remote_llm"
	GenerationDeterministicFallback GenerationFacet = "deterministic_fallback"
)

// ClarifierFacet tells whether a follow-up question was asked
type ClarifierFacet string

const (
	ClarifierAsked ClarifierFacet = "asked_follow_up"
	ClarifierNone  ClarifierFacet = "no_follow_up"
)

// ReasoningOnboarding is the label for the greeting short-circuit route.
// It bypasses retrieval, synthesis and safety checks entirely.
const ReasoningOnboarding = "onboarding"

// ReasoningLabel joins the three facets into the stable reasoning_type tag
func ReasoningLabel(r RetrievalFacet, g GenerationFacet, c ClarifierFacet) string {
	return string(r) + "+" + string(g) + "+" + string(c)
}
