package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of the public JSON API.
	APIPath = "/api"

	// AdminPath is the prefix of the back-office JSON API.
	AdminPath = APIPath + "/admin"

	// IDParam is the route parameter holding a numeric row id.
	IDParam = "id"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// Response messages. Clients match on these strings.
const (
	MsgRegistered      = "Registered"
	MsgInvalid         = "Invalid"
	MsgSent            = "Sent"
	MsgOrderPlaced     = "Order placed"
	MsgSettingsUpdated = "Settings updated"
	MsgSuccess         = "Success"
	MsgUpdated         = "Updated"
	MsgAdded           = "Added"
	MsgDeleted         = "Deleted"
)

// Error bodies.
const (
	ErrMsgInvalidBody = "invalid request body"
	ErrMsgInvalidID   = "invalid id"
	ErrMsgGeneric     = "Error"
)
