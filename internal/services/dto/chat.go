package dto

type SendChatRequestRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
}

type RespondChatRequestRequest struct {
	Approve bool `json:"approve"`
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required,max=5000"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
