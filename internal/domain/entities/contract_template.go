package entities

import "time"

// ContractTemplate is an uploaded contract document kept as a reusable
// template.
//
// Storage model:
//   - record in DynamoDB (PK: id, GSI user_id-index: user_id)
//   - document in object storage under FileKey
type ContractTemplate struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FileName    string    `json:"file_name"`
	FileKey     string    `json:"file_key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
