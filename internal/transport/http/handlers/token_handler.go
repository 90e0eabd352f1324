package handlers

import (
	"encoding/json"
	"net"
	"net/http"

	"go.uber.org/zap"

	authsvc "github.com/Hisham6667/summer-sports-server/internal/services/auth"
	ratesvc "github.com/Hisham6667/summer-sports-server/internal/services/rate"
	"github.com/Hisham6667/summer-sports-server/internal/transport/http/dto"
	httperrors "github.com/Hisham6667/summer-sports-server/internal/transport/http/errors"
)

type TokenHandler struct {
	manager *authsvc.TokenManager
	limiter *ratesvc.Limiter
	log     *zap.Logger
}

func NewTokenHandler(manager *authsvc.TokenManager, limiter *ratesvc.Limiter, log *zap.Logger) *TokenHandler {
	return &TokenHandler{
		manager: manager,
		limiter: limiter,
		log:     log,
	}
}

func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	if h.manager == nil {
		writeInternal(w, "token issuer is unavailable")
		return
	}

	if h.limiter != nil {
		retryAfter, allowed, err := h.limiter.AllowToken(r.Context(), clientIP(r))
		if err != nil {
			if h.log != nil {
				h.log.Warn("token rate limiter failed, admitting request", zap.Error(err))
			}
		} else if !allowed {
			httperrors.Write(w, http.StatusTooManyRequests, httperrors.RateLimitError{
				Error:         true,
				Message:       "too many token requests",
				RetryAfterSec: retryAfter,
			})
			return
		}
	}

	// The claim is signed as supplied; unknown fields are dropped rather
	// than rejected on this route.
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	token, _, err := h.manager.Issue(authsvc.Claim{Email: req.Email, Name: req.Name})
	if err != nil {
		if h.log != nil {
			h.log.Error("issue token", zap.Error(err))
		}
		writeInternal(w, "failed to issue token")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.TokenResponse{Token: token})
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// requireOwnedEmail enforces the one ownership rule: a caller may list only
// records filed under the email inside their own token.
func requireOwnedEmail(w http.ResponseWriter, r *http.Request, email string) bool {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "unauthorized user")
		return false
	}
	if email != identity.Email {
		writeForbidden(w, "forbidden access")
		return false
	}
	return true
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.New(message))
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.New(message))
}

func writeForbidden(w http.ResponseWriter, message string) {
	httperrors.Write(w, http.StatusForbidden, httperrors.New(message))
}

func writeInternal(w http.ResponseWriter, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.New(message))
}
