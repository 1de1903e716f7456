package roster

// Request status codes as stored by the rostering system.
const (
	StatusPending    = 1
	StatusApproved   = 2
	StatusDenied     = 4
	StatusWaitlisted = 8
)

// StatusLabel maps a stored status code to its display label. Codes outside
// the known table map to "Other" rather than failing the row.
func StatusLabel(code int) string {
	switch code {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusDenied:
		return "Denied"
	case StatusWaitlisted:
		return "Waitlisted"
	default:
		return "Other"
	}
}
