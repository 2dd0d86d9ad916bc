package http

const (
	HeaderSessionID  = "X-Session-ID"
	HeaderResolution = "X-Kuma-Resolution"
	HeaderProvider   = "X-Kuma-Provider"
)
