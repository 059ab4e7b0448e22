// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every route except the docs.
//   - rayid: a unique Request ID (RayID) per request, stored in the context
//     for logger.WithRayID and echoed in the X-Ray-ID response header.
package middleware
