// Package dav implements the WebDAV/CalDAV upstream client.
//
// The bridge never speaks CalDAV to its own callers; it exposes plain JSON
// and forwards the real PROPFIND/REPORT/PUT/DELETE traffic to the upstream
// host (iCloud by default) with HTTP basic auth. This package owns that
// forwarding plus the multistatus XML parsing the responses require.
//
// # Components
//
//   - Client: the four WebDAV verbs the bridge needs, behind an interface
//     so handlers can be tested against a mock upstream.
//   - MultiStatus: parsed DAV multistatus replies with extraction helpers
//     for principal hrefs, the calendar home set, calendar listings and
//     calendar-data payloads.
//
// # Error Mapping
//
// Upstream replies >=400 surface as *UpstreamError so the HTTP layer can
// proxy the upstream status. Missing credentials and unparseable XML have
// dedicated sentinel errors (ErrCredentialsMissing, ErrMalformedXML).
package dav
