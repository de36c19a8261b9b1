// Package http implements the REST API of the PlusMinus backend.
//
// Every route lives under /api. Requests pass through panic recovery,
// trace id propagation, access logging, Prometheus instrumentation and
// response compression; account routes additionally require a bearer
// access token. Errors are written as a JSON [models.ErrorBody].
package http
