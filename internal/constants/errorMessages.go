package constants

const (
	MsgLoginRequired    = "請先登入"
	MsgEventNotFound    = "Event not found"
	MsgDayNotFound      = "Day not found"
	MsgItemNotFound     = "Checklist item not found"
	MsgCategoryNotFound = "Checklist category not found"
	MsgEmptyItemName    = "Item name is required"
	MsgInvalidBody      = "Invalid request body"
	MsgInvalidTab       = "Unknown tab"
	MsgInvalidFlag      = "Unknown flag"
	MsgStorageFailed    = "Unable to save changes"
)
