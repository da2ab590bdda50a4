package models

// ChatRequest gates whether two users may exchange messages. Messaging
// requires an approved request between the pair, in either direction.
type ChatRequest struct {
	BaseModel
	SenderID   string            `gorm:"not null;index:idx_chat_request_pair" json:"sender_id"`
	ReceiverID string            `gorm:"not null;index:idx_chat_request_pair" json:"receiver_id"`
	Status     ChatRequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

// Message belongs to a conversation keyed by the sorted participant pair,
// so both directions land in the same history.
type Message struct {
	BaseModel
	ConversationID string `gorm:"not null;index" json:"conversation_id"`
	SenderID       string `gorm:"not null" json:"sender_id"`
	ReceiverID     string `gorm:"not null;index" json:"receiver_id"`
	Content        string `gorm:"not null" json:"content"`
	Read           bool   `gorm:"default:false" json:"read"`
}
