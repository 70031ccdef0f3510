package patient

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.ListPatients)
	g.POST("/", h.CreatePatient)
	g.PUT("/:id", h.ReplacePatient)
	g.DELETE("/:id", h.DeletePatient)
	g.GET("/patient/:patient_id", h.GetPatient)
	g.POST("/patient/:patient_id/medications", h.AddMedication)
	g.GET("/patient/:patient_id/medications", h.ListMedications)
	g.DELETE("/patient/:patient_id/medications/:index", h.RemoveMedicationAt)
	g.DELETE("/patient/:patient_id/medications/id/:medication_id", h.RemoveMedicationByID)
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, SerializeList(patients))
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.Resolve(c.Request().Context(), c.Param("patient_id"))
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, Serialize(p))
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePatient(c.Request().Context(), &p); err != nil {
		return HTTPError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) ReplacePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.ReplacePatient(c.Request().Context(), c.Param("id"), &p); err != nil {
		return HTTPError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	if err := h.svc.DeletePatient(c.Request().Context(), c.Param("id")); err != nil {
		return HTTPError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) AddMedication(c echo.Context) error {
	var entry MedicationEntry
	if err := c.Bind(&entry); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.AddMedication(c.Request().Context(), c.Param("patient_id"), &entry)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, Serialize(p))
}

func (h *Handler) ListMedications(c echo.Context) error {
	meds, err := h.svc.ListMedications(c.Request().Context(), c.Param("patient_id"))
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *Handler) RemoveMedicationAt(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medication index")
	}
	if err := h.svc.RemoveMedicationAt(c.Request().Context(), c.Param("patient_id"), index); err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "medication removed"})
}

func (h *Handler) RemoveMedicationByID(c echo.Context) error {
	err := h.svc.RemoveMedicationByID(c.Request().Context(), c.Param("patient_id"), c.Param("medication_id"))
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "medication removed"})
}
