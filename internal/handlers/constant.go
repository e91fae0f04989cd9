package handlers

// Log prefixes
const (
	LogPrefixGetProducts = "internal.handlers.GetProducts"
	LogPrefixUnsupported = "internal.handlers.UnsupportedRequest"
)

// Slot names
const (
	SlotProductFamily = "product_family"
)

// Product query
const (
	ProductSelect = "SELECT Id, Name, ProductCode, Description, Family FROM Product2"
	ProductLimit  = 20
)

// Messages
const (
	MsgProductsFound          = "Found %d products."
	MsgNoProducts             = "No products found."
	MsgNoProductsForFamily    = "No products found for category '%s'."
	MsgSalesforceError        = "Error communicating with Salesforce API: %s"
	MsgSalesforceAuthFailed   = "Salesforce authentication failed or session is invalid."
	MsgUnsupportedRequestText = "I'm sorry, I can't help with that request. I am focused on Salesforce Revenue Cloud products."
)
