package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"

	"github.com/gin-gonic/gin"
)

// UploadCSVHandler stores a CSV file in the uploads volume
// @Summary      Upload CSV file
// @Description  Stores a CSV file under /Volumes/<catalog>/<schema>/<volume>/<filename>. An existing file with the same name is overwritten.
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file to upload"
// @Success      200   {object}  models.UploadResponse  "File stored"
// @Failure      400   {object}  models.ErrorResponse   "No file, wrong extension or empty file"
// @Failure      500   {object}  models.ErrorResponse   "Storage failure"
// @Router       /api/v1/upload-csv [post]
func (h *Handlers) UploadCSVHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Keine Datei übermittelt."})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Datei konnte nicht geöffnet werden."})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		log.Printf("[UPLOAD] %s reading %s failed: %v", requestID(c), file.Filename, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Datei konnte nicht gelesen werden."})
		return
	}

	resp, err := h.uploadService.UploadCSV(c.Request.Context(), file.Filename, content)
	if err != nil {
		respondError(c, "UPLOAD", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
