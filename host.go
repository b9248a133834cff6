package cloudinary

// StandardDomain serves every cloud; the cloud name goes into the path.
const StandardDomain = "res.cloudinary.com"

// Host is the delivery domain. The zero value is the standard host.
type Host struct {
	custom bool
	domain string
}

// StandardHost delivers from res.cloudinary.com with the bucket in the path.
func StandardHost() Host {
	return Host{}
}

// CustomHost delivers from a private CDN domain. The bucket is assumed to be
// part of the domain and is left out of the path. The domain is checked only
// when a URL is built.
func CustomHost(domain string) Host {
	return Host{custom: true, domain: domain}
}

// IsCustom reports whether the host is a custom domain.
func (h Host) IsCustom() bool {
	return h.custom
}

// Domain returns the host name used in URLs.
func (h Host) Domain() string {
	if !h.custom {
		return StandardDomain
	}
	return h.domain
}

func (h Host) String() string {
	return h.Domain()
}
