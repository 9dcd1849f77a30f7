// Package config defines the server configuration structure.
package config

// TCPConfig holds the transport parameters for the server listener.
type TCPConfig struct {
	// Host is the hostname or IP address advertised in endpoints.
	Host string `yaml:"host" json:"host" koanf:"host"`

	// Port is the TCP port number of the service.
	Port uint16 `yaml:"port" json:"port" koanf:"port"`

	// HelloTimeout is the number of seconds a client has to complete the
	// initial hello handshake before the server closes the connection.
	HelloTimeout uint32 `yaml:"hello_timeout" json:"hello_timeout" koanf:"hello_timeout"`
}

// Endpoint is one access path exposed by the server: a URL path combined
// with a security profile and an authentication requirement.
type Endpoint struct {
	// Name is the display identifier for the endpoint. Names should be
	// unique so that violations can be attributed, but uniqueness is not
	// enforced.
	Name string `yaml:"name" json:"name" koanf:"name"`

	// Path distinguishes this endpoint from its siblings on the same
	// listener.
	Path string `yaml:"path" json:"path" koanf:"path"`

	// SecurityPolicy is the cryptographic algorithm suite protecting
	// sessions on this endpoint.
	SecurityPolicy SecurityPolicy `yaml:"security_policy" json:"security_policy" koanf:"security_policy"`

	// SecurityMode selects whether session messages are signed,
	// signed and encrypted, or left unprotected.
	SecurityMode SecurityMode `yaml:"security_mode" json:"security_mode" koanf:"security_mode"`

	// Anonymous allows sessions with no client credential. Absent from
	// the persisted document means disabled.
	Anonymous bool `yaml:"anonymous,omitempty" json:"anonymous,omitempty" koanf:"anonymous"`

	// User and Pass form an optional credential pair for user name /
	// password authentication. Empty string means unset; the pair must be
	// set or unset together.
	User string `yaml:"user,omitempty" json:"user,omitempty" koanf:"user"`
	Pass string `yaml:"pass,omitempty" json:"pass,omitempty" koanf:"pass"`
}

// ServerConfig is the root configuration for uacore-server.
//
// The structure exclusively owns its TCPConfig and Endpoint values. It is
// treated as an immutable snapshot by the runtime: reconfiguration replaces
// the whole structure rather than mutating it in place.
type ServerConfig struct {
	// ApplicationName identifies this server.
	ApplicationName string `yaml:"application_name" json:"application_name" koanf:"application_name"`

	// ApplicationURI is the globally unique URI for this application
	// instance.
	ApplicationURI string `yaml:"application_uri" json:"application_uri" koanf:"application_uri"`

	// ProductURI identifies the product.
	ProductURI string `yaml:"product_uri" json:"product_uri" koanf:"product_uri"`

	// PKIDir is the certificate and key store location, absolute or
	// relative to the executable. Existence is not checked here; the
	// security subsystem resolves it.
	PKIDir string `yaml:"pki_dir" json:"pki_dir" koanf:"pki_dir"`

	// DiscoveryService turns the discovery service on or off.
	DiscoveryService bool `yaml:"discovery_service" json:"discovery_service" koanf:"discovery_service"`

	// TCPConfig holds the transport parameters.
	TCPConfig TCPConfig `yaml:"tcp_config" json:"tcp_config" koanf:"tcp_config"`

	// Endpoints are the access paths exposed by the server, in
	// advertisement order. At least one is required.
	Endpoints []Endpoint `yaml:"endpoints" json:"endpoints" koanf:"endpoints"`

	// MaxArrayLength caps decoded array lengths in elements.
	MaxArrayLength uint32 `yaml:"max_array_length" json:"max_array_length" koanf:"max_array_length"`

	// MaxStringLength caps decoded string lengths in bytes.
	MaxStringLength uint32 `yaml:"max_string_length" json:"max_string_length" koanf:"max_string_length"`

	// MaxByteStringLength caps decoded byte string lengths in bytes.
	//
	// The three limits bound memory allocation during message decoding.
	// They are consumed by the wire codec; validation only requires them
	// to be nonzero.
	MaxByteStringLength uint32 `yaml:"max_byte_string_length" json:"max_byte_string_length" koanf:"max_byte_string_length"`
}
