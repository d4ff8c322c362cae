package platform

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options carries what a platform adapter needs to authenticate and reach its API.
type Options struct {
	Platform  string
	Token     string
	BaseURL   string
	UserAgent string
	// HTTPClient is the base client; adapters layer authentication on top of its transport.
	HTTPClient *http.Client
	// MaxPages bounds pagination of closed pull request listings. Zero means unbounded.
	MaxPages int
}

// ClientFactory creates a Client for one platform.
type ClientFactory interface {
	CreateClient(logger logrus.FieldLogger, opts Options) (Client, error)
}

var factories = make(map[string]ClientFactory)

// RegisterFactory registers a platform factory. Adapters call it from init.
func RegisterFactory(name string, factory ClientFactory) {
	factories[strings.ToLower(name)] = factory
}

// Platforms returns the registered platform names.
func Platforms() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// NewClient creates a client for opts.Platform using the registered factory.
func NewClient(logger logrus.FieldLogger, opts Options) (Client, error) {
	factory, ok := factories[strings.ToLower(opts.Platform)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, opts.Platform)
	}
	return factory.CreateClient(logger, opts)
}
