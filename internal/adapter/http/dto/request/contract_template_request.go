package request

// UploadContractTemplateForm holds the text parts of the multipart upload.
// The document itself is the "file" part.
type UploadContractTemplateForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}
