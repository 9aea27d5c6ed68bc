package entity

import "time"

// User representa al usuario que origina un movimiento. El alta y la
// autenticación viven en un servicio externo; aquí solo se lee para
// resolver el email de display en el libro de movimientos.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}
