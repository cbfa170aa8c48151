package conversation

// ProcessResult is the reply to one user message.
type ProcessResult struct {
	SessionID      string `json:"sessionId"`
	Response       string `json:"response"`
	Step           string `json:"step"`
	Data           any    `json:"data"`
	RequiresAction string `json:"requiresAction"`
}
