package dav

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// MultiStatus is a parsed DAV multistatus reply.
type MultiStatus struct {
	XMLName   xml.Name      `xml:"DAV: multistatus"`
	Responses []davResponse `xml:"response"`
}

type davResponse struct {
	Href      string        `xml:"DAV: href"`
	Propstats []davPropstat `xml:"propstat"`
}

type davPropstat struct {
	Prop   davProp `xml:"prop"`
	Status string  `xml:"status"`
}

type davProp struct {
	DisplayName          *string `xml:"DAV: displayname"`
	CurrentUserPrincipal *davRef `xml:"DAV: current-user-principal"`
	PrincipalURL         *davRef `xml:"DAV: principal-URL"`
	CalendarHomeSet      *davRef `xml:"urn:ietf:params:xml:ns:caldav calendar-home-set"`
	CalendarData         string  `xml:"urn:ietf:params:xml:ns:caldav calendar-data"`
	GetETag              string  `xml:"DAV: getetag"`
}

type davRef struct {
	Href string `xml:"DAV: href"`
}

// CalendarRef identifies one calendar collection in a listing.
type CalendarRef struct {
	Href        string `json:"href"`
	DisplayName string `json:"displayname"`
}

// CalendarObject is one calendar resource with its raw ICS payload.
type CalendarObject struct {
	Href string `json:"href"`
	ICS  string `json:"ics"`
}

// ParseMultiStatus decodes an upstream multistatus body.
func ParseMultiStatus(data []byte) (*MultiStatus, error) {
	var ms MultiStatus
	if err := xml.Unmarshal(data, &ms); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}
	return &ms, nil
}

// PrincipalHref returns the current-user-principal href, falling back to
// principal-URL. Empty when neither prop is present.
func (m *MultiStatus) PrincipalHref() string {
	for _, resp := range m.Responses {
		for _, ps := range resp.Propstats {
			if ref := ps.Prop.CurrentUserPrincipal; ref != nil {
				if href := strings.TrimSpace(ref.Href); href != "" {
					return href
				}
			}
		}
	}
	for _, resp := range m.Responses {
		for _, ps := range resp.Propstats {
			if ref := ps.Prop.PrincipalURL; ref != nil {
				if href := strings.TrimSpace(ref.Href); href != "" {
					return href
				}
			}
		}
	}
	return ""
}

// CalendarHomeHref returns the calendar-home-set href, or empty.
func (m *MultiStatus) CalendarHomeHref() string {
	for _, resp := range m.Responses {
		for _, ps := range resp.Propstats {
			if ref := ps.Prop.CalendarHomeSet; ref != nil {
				if href := strings.TrimSpace(ref.Href); href != "" {
					return href
				}
			}
		}
	}
	return ""
}

// Calendars returns every response that carries both an href and a
// displayname. The home collection itself reports no displayname on iCloud
// and drops out naturally.
func (m *MultiStatus) Calendars() []CalendarRef {
	items := make([]CalendarRef, 0, len(m.Responses))
	for _, resp := range m.Responses {
		href := strings.TrimSpace(resp.Href)
		if href == "" {
			continue
		}
		for _, ps := range resp.Propstats {
			if ps.Prop.DisplayName == nil {
				continue
			}
			items = append(items, CalendarRef{
				Href:        href,
				DisplayName: strings.TrimSpace(*ps.Prop.DisplayName),
			})
			break
		}
	}
	return items
}

// CalendarObjects returns every response that carries both an href and
// calendar data.
func (m *MultiStatus) CalendarObjects() []CalendarObject {
	items := make([]CalendarObject, 0, len(m.Responses))
	for _, resp := range m.Responses {
		href := strings.TrimSpace(resp.Href)
		if href == "" {
			continue
		}
		for _, ps := range resp.Propstats {
			ics := strings.TrimSpace(ps.Prop.CalendarData)
			if ics == "" {
				continue
			}
			items = append(items, CalendarObject{Href: href, ICS: ics})
			break
		}
	}
	return items
}
