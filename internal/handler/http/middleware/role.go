package middleware

import (
	"fmt"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(user.ErrAdminAccessRequired, user.RoleAdmin)(next)
}

// RequireFaculty requires the faculty role
func RequireFaculty(next http.Handler) http.Handler {
	return requireRole(user.ErrFacultyAccessRequired, user.RoleFaculty)(next)
}

// RequireStudent requires the student role
func RequireStudent(next http.Handler) http.Handler {
	return requireRole(user.ErrStudentAccessRequired, user.RoleStudent)(next)
}

func requireRole(accessErr error, roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, accessErr)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, accessErr)
				return
			}

			role := user.Role(roleStr)
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.HandleError(w, accessErr)
		})
	}
}

// RequirePermission checks if the user's role carries a specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			role := user.Role(roleStr)
			if !user.HasPermission(role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
