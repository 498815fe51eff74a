package handlers

import (
	"errors"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase"
	"joinerypro/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectType), errors.Is(err, usecase.ErrInvalidProjectStatus),
		errors.Is(err, usecase.ErrInvalidMaterialID), errors.Is(err, usecase.ErrInvalidMaterialName),
		errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidUnitCost),
		errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrInvalidDocumentType), errors.Is(err, usecase.ErrInvalidDocStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCategoryMismatch):
		return pkg.NewDomainErrorSimple("CATEGORY_MISMATCH", "Category does not belong to the transaction type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedBackupVersion):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_BACKUP_VERSION", "Unsupported backup version", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBackup):
		return pkg.NewDomainErrorSimple("INVALID_BACKUP", "Backup file is not valid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrDocumentIDTaken):
		return pkg.NewDomainErrorSimple("DOCUMENT_ID_TAKEN", "Document id already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrClientIDTaken), errors.Is(err, usecase.ErrProjectIDTaken),
		errors.Is(err, usecase.ErrMaterialIDTaken), errors.Is(err, usecase.ErrTransactionIDTaken):
		return pkg.NewDomainErrorSimple("ID_TAKEN", "Id already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, scope string, err error) {
	appErr := mapDomainError(err)
	log.Printf("[%s][handler] %s %s failed status=%d err=%v", scope, c.Request.Method, c.FullPath(), appErr.HTTPStatus, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context, scope string, err error) {
	log.Printf("[%s][handler] invalid payload path=%s err=%v", scope, c.FullPath(), err)
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
