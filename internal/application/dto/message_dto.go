package dto

// SubmitMessageRequest cuerpo de POST /message/submit.
type SubmitMessageRequest struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// MessageListItem fila del listado de mensajes con el nombre del remitente.
type MessageListItem struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Message  string `json:"message"`
	Time     string `json:"time"`
	Type     string `json:"type,omitempty"`
	UserName string `json:"user_name"`
}

// MessageListResponse listado de mensajes según el rol del solicitante.
type MessageListResponse struct {
	Total    int               `json:"total"`
	Messages []MessageListItem `json:"messages"`
}
