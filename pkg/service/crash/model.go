package crash

const (
	// FaultError is the error reported by every call to the crash route.
	FaultError = "Website intentionally down for Portia Uptime Agent testing"
	// FaultMessage tells whoever reads the response that the outage is deliberate.
	FaultMessage = "This error is expected - Portia should detect and fix this"
)

// FaultResponse is the body of every crash response. Field order is part of the wire format.
type FaultResponse struct {
	Error   string `json:"error" example:"Website intentionally down for Portia Uptime Agent testing"`
	Message string `json:"message" example:"This error is expected - Portia should detect and fix this"`
}
