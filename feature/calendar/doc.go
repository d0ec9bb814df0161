// Package calendar exposes the JSON bridge over the upstream CalDAV host.
//
// The feature owns discovery (principal, calendar home, calendar listing)
// and the event operations (time-range query, create, delete). Every route
// translates a small JSON request into the corresponding WebDAV exchange
// and maps upstream failures back onto sensible HTTP statuses.
//
// # HTTP Endpoints
//
//   - GET  /health               : liveness probe
//   - GET  /principal            : discover the current-user-principal href
//   - GET  /debug/principal-xml  : raw upstream multistatus (debugging aid)
//   - GET  /home                 : discover the calendar-home-set href
//   - GET  /calendars            : list calendars under the home collection
//   - POST /events               : VEVENTs within a UTC time range
//   - POST /create               : upload a new VEVENT (ICS built here)
//   - POST /delete               : delete a calendar object by href
package calendar
