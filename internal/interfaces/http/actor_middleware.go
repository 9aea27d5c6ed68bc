package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafestock-api/pkg/jwt"
)

// Local key para el UserID del actor en Fiber.
const LocalActorID = "actor_id"

// ActorMiddleware extrae el usuario que actúa desde un Bearer Token JWT, si
// viene. Nunca rechaza la petición: la identidad es un colaborador externo
// opcional y los movimientos sin actor se registran como del sistema.
func ActorMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Next()
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			// Token inválido o expirado: seguir sin actor.
			return c.Next()
		}
		c.Locals(LocalActorID, userID)
		return c.Next()
	}
}

// GetActorID devuelve el UserID del actor, o vacío si la petición no vino autenticada.
func GetActorID(c *fiber.Ctx) string {
	v := c.Locals(LocalActorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
