package dto

// MessageResponse is the canonical envelope for every message-only
// response, including all core-driven rejections. The field name is part
// of the wire contract.
type MessageResponse struct {
	Message string `json:"Message"`
}
