// Package services holds the trainerhub resource services. Each service is a
// thin, typed wrapper over the API gateway: it builds the path and query,
// sends the payload and decodes the response. None of them deal with
// credentials; the gateway attaches and purges those.
package services

import (
	"context"
	"net/url"
	"strconv"
)

// API is the gateway surface the services depend on. *client.Gateway
// satisfies it.
type API interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// DefaultExpiringDays is the look-ahead window for expiring workouts and plans.
const DefaultExpiringDays = 7

// resourcePath joins a collection with escaped ids and sub-resources.
func resourcePath(collection string, parts ...string) string {
	p := collection
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

// optionalQuery builds a query from non-empty key/value pairs.
func optionalQuery(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	return q
}

func daysQuery(days int) url.Values {
	if days <= 0 {
		days = DefaultExpiringDays
	}
	return url.Values{"days": {strconv.Itoa(days)}}
}
