package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CopyResponse struct {
	CopiedCount int `json:"copied_count"`
}

type CopyChainResponse struct {
	TotalCopied int `json:"total_copied"`
}

type URLResponse struct {
	URL string `json:"url"`
}
