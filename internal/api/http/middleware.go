package http

import (
	"context"
	"net/http"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalFrom extracts the authenticated caller placed in the context by
// the auth middleware.
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

// Middleware bundles the token validator and role gates.
type Middleware struct {
	tokenManager security.TokenManager
}

func NewMiddleware(tokenManager security.TokenManager) *Middleware {
	return &Middleware{tokenManager: tokenManager}
}

// Authenticate validates the bearer token and injects a Principal into the
// request context. The principal travels with the request; no handler or
// service holds per-request identity state.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := m.tokenManager.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		principal := domain.Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   domain.Role(claims.Role),
		}
		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects callers whose role is not in the allowed set. Must run
// after Authenticate.
func (m *Middleware) RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFrom(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			if _, ok := allowed[principal.Role]; !ok {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// auditor writes unexpected failures to the append-only action log.
type auditor struct {
	actionLogRepo repository.ActionLogRepository
}

func newAuditor(actionLogRepo repository.ActionLogRepository) *auditor {
	return &auditor{actionLogRepo: actionLogRepo}
}

func (a *auditor) logFailure(r *http.Request, action string, err error) {
	var userID int32
	if principal, ok := PrincipalFrom(r.Context()); ok {
		userID = principal.UserID
	}
	entry := &domain.ActionLog{
		UserID:   userID,
		ClientIP: clientIP(r),
		Action:   action,
		Detail:   err.Error(),
	}
	if logErr := a.actionLogRepo.Create(r.Context(), entry); logErr != nil {
		logger.Error("Failed to write action log", "action", action, "error", logErr)
	}
	logger.Error("Request failed", "action", action, "error", err)
}
