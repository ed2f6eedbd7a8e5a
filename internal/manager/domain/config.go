package domain

// SecretConfig is a named bag of configuration fields, some of which are
// secrets. Values are stored verbatim server-side; masking happens only on
// the read path.
type SecretConfig map[string]string

// Well-known config names.
const (
	ConfigServer = "server" // meeting-server credentials
	ConfigEmail  = "email"  // outbound-mail credentials
)

// Server config fields.
const (
	FieldURL       = "url"
	FieldAPIKey    = "apiKey"
	FieldAPISecret = "apiSecret"
)

// Email config fields.
const (
	FieldProvider = "provider"
	FieldFrom     = "fromAddress"
)

// SecretFields lists, per config name, the fields that must be masked on any
// client-facing read path and merge-protected on writes.
func SecretFields(name string) []string {
	switch name {
	case ConfigServer:
		return []string{FieldAPISecret}
	case ConfigEmail:
		return []string{FieldAPIKey, FieldAPISecret}
	default:
		return nil
	}
}

// Clone returns a shallow copy so masking never mutates the stored map.
func (c SecretConfig) Clone() SecretConfig {
	if c == nil {
		return nil
	}
	out := make(SecretConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
