package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/application/usecase"
)

// BackupHandler maneja la exportación e importación del documento completo.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Descargar backup JSON del documento completo
// @Tags         backup
// @Produce      application/json
// @Success      200  {file}  binary
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	raw, err := h.uc.Export()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="backup_pos.json"`)
	return c.Send(raw)
}

// Import godoc
// @Summary      Importar backup y reemplazar todos los datos
// @Tags         backup
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo vacío"})
	}
	if err := h.uc.Import(c.Body()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset godoc
// @Summary      Borrar todos los datos y volver al documento por defecto
// @Tags         backup
// @Success      204
// @Router       /api/backup/reset [post]
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
