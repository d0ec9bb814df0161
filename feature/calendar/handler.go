package calendar

import (
	"errors"

	"caldav-bridge/core/dav"
	"caldav-bridge/core/logger"
	"caldav-bridge/feature/calendar/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the calendar bridge.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the calendar bridge routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
	app.Get("/principal", h.HandlePrincipal)
	app.Get("/debug/principal-xml", h.HandlePrincipalXML)
	app.Get("/home", h.HandleHome)
	app.Get("/calendars", h.HandleCalendars)
	app.Post("/events", h.HandleEvents)
	app.Post("/create", h.HandleCreate)
	app.Post("/delete", h.HandleDelete)
}

// HandleHealth reports liveness.
// @Summary Health Check
// @Tags bridge
// @Produce json
// @Success 200 {object} models.HealthResponse "OK"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{OK: true})
}

// HandlePrincipal discovers the current user's principal href.
// @Summary Discover Principal
// @Description Discovers the current-user-principal href on the upstream CalDAV host.
// @Tags bridge
// @Produce json
// @Success 200 {object} models.PrincipalResponse "Principal"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /principal [get]
func (h *Handler) HandlePrincipal(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	href, err := h.service.Principal(c.Context())
	if err != nil {
		l.Error("Principal discovery failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(models.PrincipalResponse{PrincipalHref: href})
}

// HandlePrincipalXML returns the raw principal multistatus for debugging.
// @Summary Raw Principal XML
// @Tags bridge
// @Produce plain
// @Success 200 {string} string "Multistatus XML"
// @Router /debug/principal-xml [get]
func (h *Handler) HandlePrincipalXML(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	raw, err := h.service.PrincipalXML(c.Context())
	if err != nil {
		l.Error("Principal XML fetch failed", zap.Error(err))
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(raw)
}

// HandleHome discovers the calendar home collection.
// @Summary Discover Calendar Home
// @Tags bridge
// @Produce json
// @Success 200 {object} models.HomeResponse "Calendar Home"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /home [get]
func (h *Handler) HandleHome(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	home, err := h.service.CalendarHome(c.Context())
	if err != nil {
		l.Error("Calendar home discovery failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(models.HomeResponse{CalendarHome: home})
}

// HandleCalendars lists the calendars under the home collection.
// @Summary List Calendars
// @Tags bridge
// @Produce json
// @Success 200 {object} models.CalendarsResponse "Calendars"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /calendars [get]
func (h *Handler) HandleCalendars(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	home, items, err := h.service.Calendars(c.Context())
	if err != nil {
		l.Error("Calendar listing failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(models.CalendarsResponse{Home: home, Items: items})
}

// HandleEvents queries VEVENTs in a time range.
// @Summary Query Events
// @Description Runs a calendar-query REPORT for VEVENTs within the given UTC time range.
// @Tags bridge
// @Accept json
// @Produce json
// @Param request body models.TimeRange true "Time Range"
// @Success 200 {object} models.EventsResponse "Events"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /events [post]
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var tr models.TimeRange
	if err := c.BodyParser(&tr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	items, err := h.service.Events(c.Context(), tr)
	if err != nil {
		l.Error("Event query failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(models.EventsResponse{Items: items})
}

// HandleCreate uploads a new VEVENT.
// @Summary Create Event
// @Tags bridge
// @Accept json
// @Produce json
// @Param request body models.CreateEvent true "Event"
// @Success 200 {object} models.CreateResponse "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /create [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var ev models.CreateEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	uid, href, err := h.service.CreateEvent(c.Context(), ev)
	if err != nil {
		l.Error("Event creation failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(models.CreateResponse{OK: true, UID: uid, Href: href})
}

// HandleDelete removes a calendar object.
// @Summary Delete Event
// @Tags bridge
// @Accept json
// @Produce json
// @Param request body models.DeleteEvent true "Object href"
// @Success 200 {object} models.DeleteResponse "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /delete [post]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var d models.DeleteEvent
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.DeleteEvent(c.Context(), d.Href); err != nil {
		l.Error("Event deletion failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(models.DeleteResponse{OK: true})
}

// respondError maps service failures onto HTTP statuses: upstream replies
// keep their status, misconfiguration is a 500, everything else (transport,
// unparseable XML) is a 502.
func respondError(c *fiber.Ctx, err error) error {
	var ue *dav.UpstreamError
	switch {
	case errors.As(err, &ue):
		return c.Status(ue.StatusCode).JSON(fiber.Map{"error": ue.Message})
	case errors.Is(err, dav.ErrCredentialsMissing),
		errors.Is(err, ErrPrincipalNotFound),
		errors.Is(err, ErrHomeNotFound):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
}
