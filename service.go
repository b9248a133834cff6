package cloudinary

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Service builds delivery URLs. Its host can be changed at any time and is
// read each time a URL is built, so the same Transformation renders against
// whichever host is current.
type Service struct {
	mu        sync.RWMutex
	host      Host
	cloudName string
	apiSecret string
}

// Option configures a Service.
type Option func(*Service)

// WithHost sets the initial delivery host.
func WithHost(h Host) Option {
	return func(s *Service) {
		s.host = h
	}
}

// WithCloudName sets the bucket used for transformations that have none.
func WithCloudName(name string) Option {
	return func(s *Service) {
		s.cloudName = name
	}
}

// WithAPISecret enables SignedURL.
func WithAPISecret(secret string) Option {
	return func(s *Service) {
		s.apiSecret = secret
	}
}

// NewService returns a Service on the standard host unless configured
// otherwise.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultService = NewService()

// DefaultService returns the Service used by Transformation.URL and
// Transformation.RawURL.
func DefaultService() *Service {
	return defaultService
}

// SetHost changes the host of the default Service.
func SetHost(h Host) {
	defaultService.SetHost(h)
}

// SetHost changes the host used by subsequent URL builds.
func (s *Service) SetHost(h Host) {
	s.mu.Lock()
	s.host = h
	s.mu.Unlock()
}

// Host returns the current host.
func (s *Service) Host() Host {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.host
}

// CloudName returns the fallback bucket, if any.
func (s *Service) CloudName() string {
	return s.cloudName
}

// URL returns
//
//	https://<host>/[<bucket>/]<image|video>/upload[/<transformation>]/<public id>.<ext>
func (s *Service) URL(t Transformation) (string, error) {
	prefix, err := s.prefix(t)
	if err != nil {
		return "", err
	}
	return prefix + "/" + chain(t.String(), t.filename()), nil
}

// RawURL returns the URL of the untransformed original, without extension.
func (s *Service) RawURL(t Transformation) (string, error) {
	prefix, err := s.prefix(t)
	if err != nil {
		return "", err
	}
	return prefix + "/" + t.PublicID, nil
}

// SignedURL is URL with a "s--<signature>--" component after "upload", as
// required for assets whose transformations are restricted.
func (s *Service) SignedURL(t Transformation) (string, error) {
	if s.apiSecret == "" {
		return "", ErrMissingSecret
	}
	prefix, err := s.prefix(t)
	if err != nil {
		return "", err
	}
	toSign := chain(t.String(), t.filename())
	sig, err := signature(toSign, s.apiSecret)
	if err != nil {
		return "", errors.Wrapf(err, "Failed to sign %s", t.PublicID)
	}
	return prefix + "/s--" + sig + "--/" + toSign, nil
}

// prefix returns "https://<host>/[<bucket>/]<media type>/upload".
func (s *Service) prefix(t Transformation) (string, error) {
	host := s.Host()
	if err := validateHost(host.Domain()); err != nil {
		return "", err
	}
	if err := validatePublicID(t.PublicID); err != nil {
		return "", err
	}

	path := make([]string, 0, 3)
	bucket := t.Bucket
	if bucket == "" {
		bucket = s.cloudName
	}
	if bucket != "" && !host.IsCustom() {
		if err := validateBucket(bucket); err != nil {
			return "", err
		}
		path = append(path, bucket)
	}
	path = append(path, t.MediaType.String(), string(DeliveryUpload))
	return "https://" + host.Domain() + "/" + strings.Join(path, "/"), nil
}
