package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"medtracker/internal/service"
)

// PrescriptionHandler handles prescription image upload and download.
type PrescriptionHandler struct {
	prescriptionService service.PrescriptionService
	maxUploadBytes      int64
}

// NewPrescriptionHandler creates a new prescription handler. maxUploadBytes
// of 0 disables the request size limit.
func NewPrescriptionHandler(prescriptionService service.PrescriptionService, maxUploadBytes int64) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionService: prescriptionService,
		maxUploadBytes:      maxUploadBytes,
	}
}

// UploadResponse represents a successful upload.
type UploadResponse struct {
	Status string `json:"status"`
	File   string `json:"file"`
}

// UploadPrescription godoc
// @Summary Upload prescription image
// @Description Stores the image as "<id>_<filename>" and sets the medicine's prescription_url.
// @Tags prescriptions
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Medicine ID"
// @Param file formData file true "Prescription image"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Failure 413 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload-prescription/{id} [post]
func (h *PrescriptionHandler) UploadPrescription(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if h.maxUploadBytes > 0 {
		req := c.Request()
		req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxUploadBytes)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	url, err := h.prescriptionService.Upload(c.Request().Context(), id, service.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        src,
	})
	if err != nil {
		httpErr := toHTTPError(err)
		if httpErr.Code >= http.StatusInternalServerError {
			c.Logger().Errorf("upload prescription for medicine %d: %v", id, err)
		}
		return httpErr
	}

	return c.JSON(http.StatusOK, UploadResponse{Status: "uploaded", File: url})
}

// GetPrescription godoc
// @Summary Get prescription image
// @Tags prescriptions
// @Produce octet-stream
// @Param filename path string true "Stored file name"
// @Success 200 {file} file
// @Failure 404 {object} errors.ErrorResponse
// @Router /prescriptions/{filename} [get]
func (h *PrescriptionHandler) GetPrescription(c echo.Context) error {
	rc, info, err := h.prescriptionService.Open(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return toHTTPError(err)
	}
	defer rc.Close()

	if info.Size >= 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}
	return c.Stream(http.StatusOK, info.ContentType, rc)
}
