package adapter

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Request describes one API call. It is a plain value so the session client
// can rebuild an identical outbound request for the replay.
type Request struct {
	Method string
	// Path is relative to the API base URL, e.g. "/profile/".
	Path string
	// Body is sent as JSON when set.
	Body any
	// Multipart, when set, takes precedence over Body.
	Multipart *Multipart
	// Result receives the decoded JSON body of a 2xx response.
	Result any
	// Anonymous requests never trigger a token renewal; their 401 is a
	// credential error.
	Anonymous bool
}

// Multipart is a multipart/form-data payload held in memory.
type Multipart struct {
	Fields map[string]string
	Files  []MultipartFile
}

type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

func (r Request) validate() error {
	if r.Method == "" {
		return fmt.Errorf("%w: empty method", ErrInvalidPath)
	}
	if !strings.HasPrefix(r.Path, "/") || strings.HasPrefix(r.Path, "//") {
		return fmt.Errorf("%w: %q is not a relative API path", ErrInvalidPath, r.Path)
	}

	u, err := url.Parse(r.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if u.IsAbs() || u.Host != "" {
		return fmt.Errorf("%w: %q is not a relative API path", ErrInvalidPath, r.Path)
	}
	return nil
}

// build returns a fresh resty request carrying access, if any.
func (r Request) build(client *resty.Client, access string) *resty.Request {
	req := client.R()
	if access != "" {
		req.SetHeader("Authorization", "Bearer "+access)
	}

	switch {
	case r.Multipart != nil:
		req.SetMultipartFormData(r.Multipart.Fields)
		for _, f := range r.Multipart.Files {
			req.SetMultipartField(f.Field, f.Filename, f.ContentType, bytes.NewReader(f.Data))
		}
	case r.Body != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(r.Body)
	}

	return req
}

func (r Request) String() string {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	return method + " " + r.Path
}
