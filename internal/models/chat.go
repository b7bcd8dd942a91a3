package models

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// LinkAnnotation marks a known learning-platform domain inside a generated
// reply. Offset is a byte offset into ChatResponse.Response.
type LinkAnnotation struct {
	Offset int    `json:"offset"`
	Domain string `json:"domain"`
	URL    string `json:"url"`
}

// ChatResponse is the reply from the assistant. Query is only set (and
// HasAgentButton only true) when the message reads as a learning request.
type ChatResponse struct {
	Response       string           `json:"response"`
	HasAgentButton bool             `json:"hasAgentButton"`
	Query          *string          `json:"query"`
	Links          []LinkAnnotation `json:"links"`
}
