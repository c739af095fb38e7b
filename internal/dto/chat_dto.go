package dto

type SendChatRequest struct {
	Message string `json:"message"`
}

type SendChatResponse struct {
	Reply string `json:"reply"`
	Lang  string `json:"lang"`
}
