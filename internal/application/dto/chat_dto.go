package dto

// ChatRequest cuerpo del endpoint de chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply respuesta del bot. El shape {"reply": ...} es contrato de
// compatibilidad con los clientes existentes.
type ChatReply struct {
	Reply string `json:"reply"`
}
