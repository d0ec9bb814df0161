package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"caldav-bridge/core/dav"
	"caldav-bridge/feature/calendar/models"

	"go.uber.org/zap"
)

// ErrPrincipalNotFound indicates the upstream reply carried no principal href.
var ErrPrincipalNotFound = errors.New("could not determine principal href")

// ErrHomeNotFound indicates the upstream reply carried no calendar-home-set.
var ErrHomeNotFound = errors.New("could not determine calendar home")

const propfindCurrentUserPrincipal = `<?xml version="1.0"?>
<D:propfind xmlns:D="DAV:">
  <D:prop><D:current-user-principal/></D:prop>
</D:propfind>`

const propfindPrincipalURL = `<?xml version="1.0"?>
<D:propfind xmlns:D="DAV:">
  <D:prop><D:principal-URL/></D:prop>
</D:propfind>`

const propfindCalendarHomeSet = `<?xml version="1.0"?>
<D:propfind xmlns:D="DAV:" xmlns:C="urn:ietf:params:xml:ns:caldav">
  <D:prop><C:calendar-home-set/></D:prop>
</D:propfind>`

const propfindCalendarList = `<?xml version="1.0"?>
<D:propfind xmlns:D="DAV:" xmlns:C="urn:ietf:params:xml:ns:caldav">
  <D:prop>
    <D:displayname/>
    <C:supported-calendar-component-set/>
    <D:resourcetype/>
  </D:prop>
</D:propfind>`

const reportTimeRangeTemplate = `<?xml version="1.0"?>
<c:calendar-query xmlns:d="DAV:" xmlns:c="urn:ietf:params:xml:ns:caldav">
  <d:prop><d:getetag/><c:calendar-data/></d:prop>
  <c:filter><c:comp-filter name="VCALENDAR">
    <c:comp-filter name="VEVENT">
      <c:time-range start="%s" end="%s"/>
    </c:comp-filter>
  </c:comp-filter></c:filter>
</c:calendar-query>`

// Service forwards calendar operations to the CalDAV upstream.
type Service struct {
	client dav.Client
	cfg    dav.Config
	logger *zap.Logger
}

// NewService creates a new calendar service.
func NewService(client dav.Client, cfg dav.Config, logger *zap.Logger) *Service {
	return &Service{client: client, cfg: cfg, logger: logger}
}

// Principal discovers the current user's principal href, probing the
// well-known path before the root and falling back to principal-URL.
func (s *Service) Principal(ctx context.Context) (string, error) {
	for _, path := range []string{"/.well-known/caldav", "/"} {
		res, err := s.client.Propfind(ctx, s.cfg.Base()+path, "0", propfindCurrentUserPrincipal)
		if err != nil {
			return "", err
		}
		ms, err := dav.ParseMultiStatus(res)
		if err != nil {
			return "", err
		}
		if href := ms.PrincipalHref(); href != "" {
			return href, nil
		}
	}

	res, err := s.client.Propfind(ctx, s.cfg.Base()+"/", "0", propfindPrincipalURL)
	if err != nil {
		return "", err
	}
	ms, err := dav.ParseMultiStatus(res)
	if err != nil {
		return "", err
	}
	if href := ms.PrincipalHref(); href != "" {
		return href, nil
	}
	return "", ErrPrincipalNotFound
}

// PrincipalXML returns the raw multistatus reply for debugging.
func (s *Service) PrincipalXML(ctx context.Context) ([]byte, error) {
	return s.client.Propfind(ctx, s.cfg.Base()+"/", "0", propfindCurrentUserPrincipal)
}

// CalendarHome discovers the calendar-home-set href of the principal.
func (s *Service) CalendarHome(ctx context.Context) (string, error) {
	principal, err := s.Principal(ctx)
	if err != nil {
		return "", err
	}

	res, err := s.client.Propfind(ctx, s.cfg.AbsoluteURL(principal), "0", propfindCalendarHomeSet)
	if err != nil {
		return "", err
	}
	ms, err := dav.ParseMultiStatus(res)
	if err != nil {
		return "", err
	}
	if href := ms.CalendarHomeHref(); href != "" {
		return href, nil
	}
	return "", ErrHomeNotFound
}

// Calendars lists the calendars under the home collection.
func (s *Service) Calendars(ctx context.Context) (string, []dav.CalendarRef, error) {
	home, err := s.CalendarHome(ctx)
	if err != nil {
		return "", nil, err
	}

	res, err := s.client.Propfind(ctx, s.cfg.AbsoluteURL(home), "1", propfindCalendarList)
	if err != nil {
		return "", nil, err
	}
	ms, err := dav.ParseMultiStatus(res)
	if err != nil {
		return "", nil, err
	}
	return home, ms.Calendars(), nil
}

// Events returns the VEVENT objects within a time range.
func (s *Service) Events(ctx context.Context, tr models.TimeRange) ([]dav.CalendarObject, error) {
	body := fmt.Sprintf(reportTimeRangeTemplate, tr.StartZ, tr.EndZ)
	res, err := s.client.Report(ctx, s.cfg.AbsoluteURL(tr.CalendarHref), "1", body)
	if err != nil {
		return nil, err
	}
	ms, err := dav.ParseMultiStatus(res)
	if err != nil {
		return nil, err
	}
	return ms.CalendarObjects(), nil
}

// CreateEvent uploads a new VEVENT and returns its uid and href.
func (s *Service) CreateEvent(ctx context.Context, ev models.CreateEvent) (string, string, error) {
	uid := ev.UID
	if uid == "" {
		uid = NewEventUID()
	}
	uid = strings.ToUpper(uid)

	ics := BuildEventICS(uid, ev.Summary, ev.DTStartZ, ev.DTEndZ, ev.Description, time.Now())
	url := s.cfg.AbsoluteURL(ev.CalendarHref) + uid + ".ics"

	if err := s.client.PutCalendar(ctx, url, []byte(ics)); err != nil {
		return "", "", err
	}
	return uid, ev.CalendarHref + uid + ".ics", nil
}

// DeleteEvent removes a calendar object by href.
func (s *Service) DeleteEvent(ctx context.Context, href string) error {
	return s.client.Delete(ctx, s.cfg.AbsoluteURL(href))
}
