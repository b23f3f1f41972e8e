package mock

// Message is one entry of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SelectContent picks the completion content for the given mode:
//
//	echo   - content of the last message in the conversation
//	random - uniform pick from the canned contents
//	fixed  - the caller-supplied literal
//
// An unknown mode or a "fixed" request without a literal yields the empty
// string. That mirrors the upstream API mocks this server emulates, where the
// caller simply gets back whatever they (mis)configured.
func SelectContent(mode string, messages []Message, fixed string, canned []string) string {
	switch mode {
	case "echo":
		if len(messages) == 0 {
			return ""
		}
		return messages[len(messages)-1].Content
	case "random":
		if len(canned) == 0 {
			return ""
		}
		return canned[RandIntn(len(canned))]
	case "fixed":
		return fixed
	}
	return ""
}

// SelectPromptContent is the text-completion variant: echo returns the prompt
// itself since there is no conversation history.
func SelectPromptContent(mode, prompt, fixed string, canned []string) string {
	switch mode {
	case "echo":
		return prompt
	case "random":
		if len(canned) == 0 {
			return ""
		}
		return canned[RandIntn(len(canned))]
	case "fixed":
		return fixed
	}
	return ""
}
