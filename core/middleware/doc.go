// Package middleware contains the outbound request interceptors of the API client.
//
// Interceptors run in registration order right before a request leaves the process.
//
// # Components
//
//   - BearerToken: attaches "Authorization: Bearer <token>" when the session holds a token.
//   - RayID: attaches the request correlation id (X-Ray-ID) carried in the request context,
//     so client and server logs can be joined.
//
// They are registered once when the api.Client is constructed.
package middleware
