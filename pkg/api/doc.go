// Package api defines the request and response messages of the giftdraw
// Connect services. Messages travel as JSON; field names follow the
// snake_case convention of the original REST API.
package api
