package dto

import "encoding/json"

// SaveDocumentRequest carries the raw collection-specific fields of a CMS
// document save.
type SaveDocumentRequest struct {
	Data json.RawMessage `json:"data" validate:"required"`
}
