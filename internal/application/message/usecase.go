package message

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

const timeLayout = "2006-01-02 15:04:05"

// UseCase mensajes de usuario al administrador: envío y listado.
// No existe actualización ni borrado de mensajes.
type UseCase struct {
	messageRepo repository.MessageRepository
}

// NewUseCase construye el caso de uso de mensajes.
func NewUseCase(messageRepo repository.MessageRepository) *UseCase {
	return &UseCase{messageRepo: messageRepo}
}

// Submit guarda un mensaje del usuario autenticado. El texto no puede estar
// vacío ni superar las 100 runas.
func (uc *UseCase) Submit(userID string, in dto.SubmitMessageRequest) error {
	text := strings.TrimSpace(in.Message)
	if text == "" {
		return domain.ErrInvalidInput
	}
	if utf8.RuneCountInString(text) > entity.MaxMessageLen {
		return domain.ErrInvalidInput
	}
	msg := &entity.Message{
		ID:      uuid.New().String(),
		UserID:  userID,
		Message: text,
		Time:    time.Now(),
		Type:    in.Type,
	}
	return uc.messageRepo.Create(msg)
}

// List devuelve los mensajes visibles para el solicitante: el admin los ve
// todos (con el nombre del remitente), un usuario solo los propios.
func (uc *UseCase) List(userID, role string) (*dto.MessageListResponse, error) {
	var (
		rows []*entity.MessageWithUser
		err  error
	)
	if role == entity.RoleAdmin {
		rows, err = uc.messageRepo.ListAll()
	} else {
		rows, err = uc.messageRepo.ListByUser(userID)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.MessageListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MessageListItem{
			ID:       r.ID,
			UserID:   r.UserID,
			Message:  r.Message.Message,
			Time:     r.Time.Format(timeLayout),
			Type:     r.Type,
			UserName: r.UserName,
		})
	}
	return &dto.MessageListResponse{Total: len(items), Messages: items}, nil
}

// Receive es la bandeja del administrador: todos los mensajes. Solo admin.
func (uc *UseCase) Receive(role string) (*dto.MessageListResponse, error) {
	if role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.List("", entity.RoleAdmin)
}
