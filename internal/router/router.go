package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"medtracker/internal/config"
	"medtracker/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	appHandler *handler.AppHandler,
	medicineHandler *handler.MedicineHandler,
	prescriptionHandler *handler.PrescriptionHandler,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", appHandler.ServeIndex)
	e.GET("/healthz", appHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/static", cfg.StaticDir)

	e.GET("/prescriptions/:filename", prescriptionHandler.GetPrescription)
	e.POST("/upload-prescription/:id", prescriptionHandler.UploadPrescription)

	medicines := e.Group("/medicines")
	medicines.POST("", medicineHandler.CreateMedicine)
	medicines.GET("", medicineHandler.ListMedicines)
	medicines.GET("/:id", medicineHandler.GetMedicine)
	medicines.PUT("/:id", medicineHandler.UpdateMedicine)
	medicines.DELETE("/:id", medicineHandler.DeleteMedicine)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
