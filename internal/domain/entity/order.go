package entity

import "time"

// Códigos de estado de un pedido.
const (
	StatusPending   = 1 // pendiente
	StatusPaid      = 2 // pagado
	StatusShipped   = 3 // enviado
	StatusCompleted = 4 // completado (terminal)
	StatusCancelled = 5 // cancelado (terminal, excluido del cálculo de utilidad)
)

// StatusMap mapea el código numérico de estado a su etiqueta.
var StatusMap = map[int]string{
	StatusPending:   "pendiente",
	StatusPaid:      "pagado",
	StatusShipped:   "enviado",
	StatusCompleted: "completado",
	StatusCancelled: "cancelado",
}

// StatusLabel devuelve la etiqueta de un código de estado, o "desconocido".
func StatusLabel(status int) string {
	if label, ok := StatusMap[status]; ok {
		return label
	}
	return "desconocido"
}

// IsTerminalStatus indica si el estado ya no admite transiciones
// (un pedido completado o cancelado no puede cancelarse de nuevo).
func IsTerminalStatus(status int) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// IsValidStatus indica si el código existe en el STATUS_MAP.
func IsValidStatus(status int) bool {
	_, ok := StatusMap[status]
	return ok
}

// Order representa un pedido de compra de un usuario sobre un producto.
//
// Ciclo de vida: creado → [actualizado]* → {cancelado | completado}.
// Crear un pedido descuenta stock e incrementa sell en la misma transacción.
type Order struct {
	ID         string
	UserID     string
	ProductsID string
	Count      int
	Status     int
	BuyTime    time.Time
}

// OrderWithUser es la fila del listado: pedido + datos de contacto del dueño.
type OrderWithUser struct {
	Order
	UserName string
	Address  string
	Phone    string
}
