package middleware

import (
	"context"
	"net/http"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// RoleAuthMiddleware checks if the user has one of the required roles
func RoleAuthMiddleware(allowedRoles ...model.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get user role from context (set by JWT middleware)
			userRole, ok := r.Context().Value(RoleKey).(string)
			if !ok || userRole == "" {
				sendUnauthorized(w, "User role not found")
				return
			}

			// Check if user has one of the allowed roles
			role := model.UserRole(userRole)
			hasPermission := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					hasPermission = true
					break
				}
			}

			if !hasPermission {
				sendForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireCustomer middleware that requires an authenticated customer
func RequireCustomer(next http.Handler) http.Handler {
	return RoleAuthMiddleware(model.RoleCustomer)(next)
}

// RequireStaff middleware that requires Staff or Owner role
func RequireStaff(next http.Handler) http.Handler {
	return RoleAuthMiddleware(model.RoleStaff, model.RoleOwner)(next)
}

// RequireOwner middleware that requires Owner role
func RequireOwner(next http.Handler) http.Handler {
	return RoleAuthMiddleware(model.RoleOwner)(next)
}

// Helper function to send forbidden response
func sendForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"error": "` + message + `"}`))
}

// Context helper functions for roles
func GetUserRole(ctx context.Context) (model.UserRole, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	if !ok {
		return "", false
	}
	return model.UserRole(role), true
}

func WithUserRole(ctx context.Context, role model.UserRole) context.Context {
	return context.WithValue(ctx, RoleKey, string(role))
}
