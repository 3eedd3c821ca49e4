package handlers

import (
	"errors"
	"log"
	"net/http"

	"cartas_marketplace/internal/adapter/http/middleware"
	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/internal/domain/policy"
	"cartas_marketplace/internal/usecase"
	"cartas_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapError translates usecase errors into the stable API error codes. Specific
// errors are matched before the kind they wrap.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuotaNotFound):
		return pkg.NewDomainError("QUOTA_NOT_FOUND", "Quota not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainError("PROPOSAL_NOT_FOUND", "Proposal not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainError("TRANSACTION_NOT_FOUND", "Transaction not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainError("CONTRACT_NOT_FOUND", "Contract not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEscrowNotFound):
		return pkg.NewDomainError("ESCROW_NOT_FOUND", "Escrow not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrKycCaseNotFound):
		return pkg.NewDomainError("KYC_CASE_NOT_FOUND", "KYC case not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)

	case errors.Is(err, policy.ErrKycLevelTooLow):
		return pkg.NewDomainError("FORBIDDEN", "KYC level too low for this action", err, http.StatusForbidden)
	case errors.Is(err, policy.ErrMfaRequired):
		return pkg.NewDomainError("FORBIDDEN", "MFA is required for this action", err, http.StatusForbidden)
	case errors.Is(err, policy.ErrDenied):
		return pkg.NewDomainError("FORBIDDEN", "Not allowed to perform this action", err, http.StatusForbidden)

	case errors.Is(err, usecase.ErrQuotaSold):
		return pkg.NewDomainError("QUOTA_SOLD", "Quota already sold", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Resource was modified concurrently, retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEscrowAlreadyReleased):
		return pkg.NewDomainError("STATE_TRANSITION_DENIED", "Escrow already released", err, http.StatusConflict)
	case errors.Is(err, entities.ErrStateTransitionDenied):
		return pkg.NewDomainError("STATE_TRANSITION_DENIED", "Transaction is not in the required step", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Conflict", err, http.StatusConflict)

	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Invalid state transition", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrProvider):
		return pkg.NewDomainError("PROVIDER_ERROR", "Escrow provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, tag string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] failed path=%s err=%v", tag, c.FullPath(), err)
	} else {
		log.Printf("[%s][handler] rejected path=%s code=%s err=%v", tag, c.FullPath(), appErr.Code, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidRequest(c *gin.Context, tag string, err error) {
	log.Printf("[%s][handler] invalid payload path=%s err=%v", tag, c.FullPath(), err)
	c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
}

// principal returns the authenticated caller or writes 401.
func principal(c *gin.Context) (entities.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return entities.Principal{}, false
	}
	return p, true
}
