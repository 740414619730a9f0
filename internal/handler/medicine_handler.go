package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"medtracker/internal/errors"
	"medtracker/internal/model"
	"medtracker/internal/service"
)

// MedicineHandler handles medicine CRUD endpoints.
type MedicineHandler struct {
	medicineService service.MedicineService
}

// NewMedicineHandler creates a new medicine handler.
func NewMedicineHandler(medicineService service.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// CreateMedicineRequest represents a medicine creation request.
type CreateMedicineRequest struct {
	Name            string  `json:"name" validate:"required"`
	Dose            string  `json:"dose" validate:"required"`
	TimeOfDay       string  `json:"time_of_day" validate:"required" example:"morning"`
	Notes           *string `json:"notes"`
	Active          *bool   `json:"active"`
	PrescriptionURL *string `json:"prescription_url"`
}

// UpdateMedicineRequest represents a partial update. Omitted fields are left
// unchanged; notes and prescription_url may be cleared with null.
type UpdateMedicineRequest struct {
	Name            *string              `json:"name"`
	Dose            *string              `json:"dose"`
	TimeOfDay       *string              `json:"time_of_day"`
	Active          *bool                `json:"active"`
	Notes           model.NullableString `json:"notes" swaggertype:"string"`
	PrescriptionURL model.NullableString `json:"prescription_url" swaggertype:"string"`
}

// StatusResponse is returned by endpoints that have no record to show.
type StatusResponse struct {
	Status string `json:"status"`
}

// CreateMedicine godoc
// @Summary Create medicine
// @Tags medicines
// @Accept json
// @Produce json
// @Param medicine body CreateMedicineRequest true "Medicine payload"
// @Success 200 {object} model.Medicine
// @Failure 400 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /medicines [post]
func (h *MedicineHandler) CreateMedicine(c echo.Context) error {
	var req CreateMedicineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.medicineService.CreateMedicine(c.Request().Context(), service.CreateMedicineInput{
		Name:            req.Name,
		Dose:            req.Dose,
		TimeOfDay:       req.TimeOfDay,
		Notes:           req.Notes,
		Active:          req.Active,
		PrescriptionURL: req.PrescriptionURL,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, created)
}

// ListMedicines godoc
// @Summary List medicines
// @Description Medicines in insertion order, optionally only those for one time of day.
// @Tags medicines
// @Produce json
// @Param time_of_day query string false "morning, afternoon or evening"
// @Success 200 {array} model.Medicine
// @Failure 500 {object} errors.ErrorResponse
// @Router /medicines [get]
func (h *MedicineHandler) ListMedicines(c echo.Context) error {
	medicines, err := h.medicineService.ListMedicines(c.Request().Context(), c.QueryParam("time_of_day"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, medicines)
}

// GetMedicine godoc
// @Summary Get medicine by id
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} model.Medicine
// @Failure 400 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /medicines/{id} [get]
func (h *MedicineHandler) GetMedicine(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	medicine, err := h.medicineService.GetMedicine(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, medicine)
}

// UpdateMedicine godoc
// @Summary Update medicine
// @Description Only the supplied fields change.
// @Tags medicines
// @Accept json
// @Produce json
// @Param id path int true "Medicine ID"
// @Param medicine body UpdateMedicineRequest true "Fields to change"
// @Success 200 {object} model.Medicine
// @Failure 400 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /medicines/{id} [put]
func (h *MedicineHandler) UpdateMedicine(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateMedicineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.medicineService.UpdateMedicine(c.Request().Context(), id, service.UpdateMedicineInput{
		Name:            req.Name,
		Dose:            req.Dose,
		TimeOfDay:       req.TimeOfDay,
		Active:          req.Active,
		Notes:           req.Notes,
		PrescriptionURL: req.PrescriptionURL,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteMedicine godoc
// @Summary Delete medicine
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /medicines/{id} [delete]
func (h *MedicineHandler) DeleteMedicine(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.medicineService.DeleteMedicine(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func toHTTPError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
