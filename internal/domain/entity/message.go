package entity

import "time"

// MaxMessageLen longitud máxima (en runas) del texto de un mensaje.
const MaxMessageLen = 100

// Message es un mensaje enviado por un usuario al administrador.
// No existe ruta de actualización ni borrado.
type Message struct {
	ID      string
	UserID  string
	Message string
	Time    time.Time
	Type    string
}

// MessageWithUser es la fila del listado: mensaje + nombre del remitente.
type MessageWithUser struct {
	Message
	UserName string
}
