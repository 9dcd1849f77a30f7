// Package config defines the server configuration structure.
package config

// Default configuration values.
const (
	DefaultEndpointName = "Default"
	DefaultEndpointPath = "/"

	DefaultApplicationName = "uacore-server"
	DefaultPKIDir          = "pki"

	DefaultHost         = "127.0.0.1"
	DefaultPort         = 4840
	DefaultHelloTimeout = 120 // seconds

	DefaultMaxArrayLength      = 1000
	DefaultMaxStringLength     = 65535
	DefaultMaxByteStringLength = 65535
)

// Built-in credentials used by the sample preset. Not for production.
const (
	SampleUser = "sample"
	SamplePass = "sample1"
)

// NewEndpoint creates an endpoint with the given profile. An empty user
// means no credential pair; any pass supplied alongside an empty user is
// dropped.
func NewEndpoint(name, path string, anonymous bool, user, pass string, policy SecurityPolicy, mode SecurityMode) Endpoint {
	if user == "" {
		pass = ""
	}
	return Endpoint{
		Name:           name,
		Path:           path,
		SecurityPolicy: policy,
		SecurityMode:   mode,
		Anonymous:      anonymous,
		User:           user,
		Pass:           pass,
	}
}

// DefaultEndpoint creates an endpoint named "Default" at the root path.
func DefaultEndpoint(anonymous bool, user, pass string, policy SecurityPolicy, mode SecurityMode) Endpoint {
	return NewEndpoint(DefaultEndpointName, DefaultEndpointPath, anonymous, user, pass, policy, mode)
}

// AnonymousEndpoint returns an endpoint with no transport security and
// anonymous access enabled.
func AnonymousEndpoint() Endpoint {
	return DefaultEndpoint(true, "", "", SecurityPolicyNone, SecurityModeNone)
}

// UserPassEndpoint returns an endpoint with no transport security that
// requires the given user name / password pair.
func UserPassEndpoint(user, pass string) Endpoint {
	return DefaultEndpoint(false, user, pass, SecurityPolicyNone, SecurityModeNone)
}

// SampleEndpoint returns an endpoint with anonymous access and the built-in
// sample credential pair both enabled, for sample code that wants everything
// available. It grants broad, unauthenticated or weakly authenticated
// access; never use it in production.
func SampleEndpoint() Endpoint {
	return DefaultEndpoint(true, SampleUser, SamplePass, SecurityPolicyNone, SecurityModeNone)
}

// New returns a server configuration wrapping the given endpoints with
// default identity strings, transport parameters and decoding limits.
func New(endpoints ...Endpoint) *ServerConfig {
	uri := "urn:" + DefaultApplicationName
	return &ServerConfig{
		ApplicationName:  DefaultApplicationName,
		ApplicationURI:   uri,
		ProductURI:       uri,
		PKIDir:           DefaultPKIDir,
		DiscoveryService: true,
		TCPConfig: TCPConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			HelloTimeout: DefaultHelloTimeout,
		},
		Endpoints:           endpoints,
		MaxArrayLength:      DefaultMaxArrayLength,
		MaxStringLength:     DefaultMaxStringLength,
		MaxByteStringLength: DefaultMaxByteStringLength,
	}
}

// DefaultAnonymous returns the configuration for a server with no transport
// security and anonymous access enabled on a single endpoint.
func DefaultAnonymous() *ServerConfig {
	return New(AnonymousEndpoint())
}

// DefaultUserPass returns the configuration for a server with a single
// endpoint requiring the given user name / password pair.
func DefaultUserPass(user, pass string) *ServerConfig {
	return New(UserPassEndpoint(user, pass))
}

// DefaultSample returns the configuration for sample code that wants
// everything available. Not for production; see SampleEndpoint.
func DefaultSample() *ServerConfig {
	return New(SampleEndpoint())
}
