package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose token failed verification upstream
// or is not an access token carrying an employee id. Runs after
// jwtauth.Verifier, which parses the Authorization header into the
// request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if typ, ok := claims["type"].(string); !ok || typ != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if id, ok := claims["employee_id"].(string); !ok || id == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
