package intent

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Names of the intents the gateway ships with.
const (
	IntentGetProducts        = "GetProducts"
	IntentUnsupportedRequest = "UnsupportedRequest"
)

// Response fence markers stripped before parsing.
const (
	FenceOpen  = "```json"
	FenceClose = "```"
)

// PromptTemplate takes the rendered schema and the JSON-quoted user query.
const PromptTemplate = `You are an advanced AI assistant specialized in Salesforce Revenue Cloud.
Your primary task is to analyze the user's query and convert it into a structured JSON object
that corresponds to one of the defined MCP (Model Context Protocol) intents.

Rules:
1. Strictly adhere to the provided intent and slot definitions.
2. If the user's query matches a defined intent, identify the intent and extract all relevant slot values.
3. If the user's query does not match any defined intent, use the "UnsupportedRequest" intent.
4. Your response MUST be ONLY a JSON object with the following structure:
   {
     "intent": "INTENT_NAME_STRING",
     "slots": { "slot_name1": "value1", ... }
   }
   If there are no slots for an intent, or no slots were extracted, return an empty object for "slots": {}.
   Do NOT include any explanatory text before or after the JSON object.

MCP Intent Definitions:
---
%s
---

User's query: %s

Your JSON response:
`

// Caller-visible messages.
const (
	MsgMissingQuery      = "Missing 'query' in request body."
	MsgModelError        = "Error communicating with the AI assistant: %s"
	MsgMalformedResponse = "Error in parsing the response from the AI assistant. It was not valid JSON."
	MsgMissingIntent     = "AI assistant did not return an 'intent'."
	MsgUnsupportedIntent = "Unsupported intent: %s"
)
